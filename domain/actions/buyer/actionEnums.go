package buyer_action

import (
	"errors"
)

type ActionEnums int

var actionStrings = []string{
	"Next",
	"SubmitBilling",
	"SelectMethod",
	"Confirm",
}

const (
	Next ActionEnums = iota
	SubmitBilling
	SelectMethod
	Confirm
)

func (buyerAction ActionEnums) Name() string {
	return buyerAction.String()
}

func (buyerAction ActionEnums) Ordinal() int {
	if buyerAction < Next || buyerAction > Confirm {
		return -1
	}
	return int(buyerAction)
}

func (buyerAction ActionEnums) Values() []string {
	return actionStrings
}

func (buyerAction ActionEnums) String() string {
	if buyerAction < Next || buyerAction > Confirm {
		return ""
	}
	return actionStrings[buyerAction]
}

func FromString(buyerAction string) (ActionEnums, error) {
	switch buyerAction {
	case "Next":
		return Next, nil
	case "SubmitBilling":
		return SubmitBilling, nil
	case "SelectMethod":
		return SelectMethod, nil
	case "Confirm":
		return Confirm, nil
	default:
		return -1, errors.New("invalid buyer action string")
	}
}
