package payment

type DirectiveKind int

var directiveKindStrings = []string{
	"PlatformBankDetails",
	"CollectOnDelivery",
	"ExternalGateway",
}

const (
	// PlatformBankDetails surfaces the platform's central bank details for the
	// buyer to pay into.
	PlatformBankDetails DirectiveKind = iota
	// CollectOnDelivery surfaces the shipping address as the collection point;
	// the monetary transfer is deferred to fulfillment time.
	CollectOnDelivery
	// ExternalGateway hands off to an external channel with no further
	// modeled behavior.
	ExternalGateway
)

func (kind DirectiveKind) String() string {
	if kind < PlatformBankDetails || kind > ExternalGateway {
		return ""
	}
	return directiveKindStrings[kind]
}

// Directive is the downstream contract of a resolved method: what the buyer
// must be shown once the method is in effect.
type Directive struct {
	Kind   DirectiveKind
	Detail string
}

func DirectiveOf(method Method, adminBankDetails string, shippingAddress string) Directive {
	switch method {
	case BankTransfer:
		return Directive{Kind: PlatformBankDetails, Detail: adminBankDetails}
	case PayOnDelivery:
		return Directive{Kind: CollectOnDelivery, Detail: shippingAddress}
	default:
		return Directive{Kind: ExternalGateway}
	}
}
