package buyer_action

import (
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
)

type buyerActionImpl struct {
	actionType actions.ActionType
	enumAction actions.IEnumAction
}

func New(actionEnum ActionEnums) actions.IAction {
	return buyerActionImpl{actions.Buyer, actionEnum}
}

func (action buyerActionImpl) ActionType() actions.ActionType {
	return action.actionType
}

func (action buyerActionImpl) ActionEnum() actions.IEnumAction {
	return action.enumAction
}
