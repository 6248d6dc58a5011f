package payment

import (
	"github.com/pkg/errors"
)

type Method int

var methodStrings = []string{
	"bank_transfer",
	"pod",
	"card",
	"wallet",
	"ussd",
}

const (
	BankTransfer Method = iota
	PayOnDelivery
	Card
	Wallet
	USSD
)

// DefaultMethods is the allowed set substituted for sellers with no
// enabled-methods configuration.
var DefaultMethods = []Method{BankTransfer}

func (method Method) Name() string {
	return method.String()
}

func (method Method) Ordinal() int {
	if method < BankTransfer || method > USSD {
		return -1
	}
	return int(method)
}

func (method Method) Values() []string {
	return methodStrings
}

func (method Method) String() string {
	if method < BankTransfer || method > USSD {
		return ""
	}
	return methodStrings[method]
}

// IsGateway reports whether the method is an opaque external gateway channel,
// with no behavior modeled beyond handing off to the gateway.
func (method Method) IsGateway() bool {
	return method != BankTransfer && method != PayOnDelivery
}

func FromString(method string) (Method, error) {
	switch method {
	case "bank_transfer":
		return BankTransfer, nil
	case "pod":
		return PayOnDelivery, nil
	case "card":
		return Card, nil
	case "wallet":
		return Wallet, nil
	case "ussd":
		return USSD, nil
	default:
		return -1, errors.New("invalid payment method string")
	}
}
