package states

import (
	"github.com/pkg/errors"
)

type IEnumState interface {
	StateName() string
	StateIndex() int
	Ordinal() int
	Values() []string
}

type stateEnum int

var stateEnumNames = []string{
	"Review",
	"Billing",
	"Payment",
	"Processing",
	"Checkout_Success",
}

var stateEnumIndexes = []int{1, 10, 20, 30, 40}

const (
	Review stateEnum = iota
	Billing
	Payment
	Processing
	CheckoutSuccess
)

func (state stateEnum) StateName() string {
	if state < Review || state > CheckoutSuccess {
		return ""
	}
	return stateEnumNames[state]
}

func (state stateEnum) StateIndex() int {
	if state < Review || state > CheckoutSuccess {
		return -1
	}
	return stateEnumIndexes[state]
}

func (state stateEnum) Ordinal() int {
	if state < Review || state > CheckoutSuccess {
		return -1
	}
	return int(state)
}

func (state stateEnum) Values() []string {
	return stateEnumNames
}

func FromIndex(index int) (IEnumState, error) {
	for ordinal, stateIndex := range stateEnumIndexes {
		if stateIndex == index {
			return stateEnum(ordinal), nil
		}
	}
	return nil, errors.Errorf("invalid state index %d", index)
}
