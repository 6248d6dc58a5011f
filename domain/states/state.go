package states

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/frame"
)

// IState is one step of the checkout flow. Transitions are strictly forward:
// a state only ever hands the frame to one of its childes, selected by the
// action that arrived.
type IState interface {
	Name() string
	Index() int
	Childes() []IState
	Parents() []IState
	Actions() []actions.IAction
	IsActionValid(actions.IAction) bool
	Process(ctx context.Context, iFrame frame.IFrame)
}
