package system_action

import (
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
)

type systemActionImpl struct {
	actionType actions.ActionType
	enumAction actions.IEnumAction
}

func New(actionEnum ActionEnums) actions.IAction {
	return systemActionImpl{actions.System, actionEnum}
}

func (action systemActionImpl) ActionType() actions.ActionType {
	return action.actionType
}

func (action systemActionImpl) ActionEnum() actions.IEnumAction {
	return action.enumAction
}
