package states

import (
	"strconv"
	"time"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
)

type BaseStateImpl struct {
	name           string
	index          int
	childes        []IState
	parents        []IState
	actions        []actions.IAction
	actionStateMap map[actions.IAction]IState
}

func NewBaseState(name string, index int, childes, parents []IState,
	actionStateMap map[actions.IAction]IState) *BaseStateImpl {
	actionList := make([]actions.IAction, 0, len(actionStateMap))
	for key := range actionStateMap {
		actionList = append(actionList, key)
	}

	return &BaseStateImpl{name, index, childes, parents, actionList, actionStateMap}
}

func (base BaseStateImpl) Name() string {
	return base.String()
}

func (base BaseStateImpl) Index() int {
	return base.index
}

func (base BaseStateImpl) Childes() []IState {
	return base.childes
}

func (base BaseStateImpl) Parents() []IState {
	return base.parents
}

func (base BaseStateImpl) Actions() []actions.IAction {
	return base.actions
}

func (base BaseStateImpl) IsActionValid(action actions.IAction) bool {
	for key := range base.actionStateMap {
		if key.ActionType() == action.ActionType() &&
			key.ActionEnum().Name() == action.ActionEnum().Name() {
			return true
		}
	}
	return false
}

func (base BaseStateImpl) StatesMap() map[actions.IAction]IState {
	return base.actionStateMap
}

// StateOf finds the transition target of an action, matching by actor type
// and enum name so callers may pass freshly built action values.
func (base BaseStateImpl) StateOf(action actions.IAction) IState {
	for key, state := range base.actionStateMap {
		if key.ActionType() == action.ActionType() &&
			key.ActionEnum().Name() == action.ActionEnum().Name() {
			return state
		}
	}
	return nil
}

func (base *BaseStateImpl) BaseState() *BaseStateImpl {
	return base
}

func (base BaseStateImpl) String() string {
	return strconv.Itoa(base.index) + "." + base.name
}

func (base BaseStateImpl) SetSessionState(session *entities.CheckoutSession,
	status entities.SessionStatus, stateIndex int) {
	session.UpdatedAt = time.Now().UTC()
	session.Status = status
	session.StateIndex = stateIndex
}
