package state_10

import (
	"context"
	"fmt"
	"strings"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/events"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/frame"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/metric"
)

const (
	stateName  string = "Billing"
	stateIndex int    = 10
)

type billingState struct {
	*states.BaseStateImpl
}

func New(childes, parents []states.IState, actionStateMap map[actions.IAction]states.IState) states.IState {
	return &billingState{states.NewBaseState(stateName, stateIndex, childes, parents, actionStateMap)}
}

func NewFrom(base *states.BaseStateImpl) states.IState {
	return &billingState{base}
}

func (state billingState) Process(ctx context.Context, iFrame frame.IFrame) {
	iFuture, ok := iFrame.Header().Value(string(frame.HeaderFuture)).(future.IFuture)
	if !ok {
		applog.GLog.Logger.Errorw("frame without future header", "state", state.Name())
		return
	}

	session, ok := iFrame.Body().Content().(*entities.CheckoutSession)
	if !ok {
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "frame body is not a checkout session", nil).
			Send()
		return
	}

	event, ok := iFrame.Header().Value(string(frame.HeaderEvent)).(events.IEvent)
	if !ok {
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "frame event header invalid", nil).
			Send()
		return
	}

	if !state.IsActionValid(event.Action()) {
		future.FactoryOf(iFuture).
			SetError(future.NotAccepted,
				fmt.Sprintf("action %s not acceptable in %s state", event.Action().ActionEnum().Name(), state.Name()), nil).
			Send()
		return
	}

	data, ok := event.Data().(events.SubmitBillingData)
	if !ok {
		future.FactoryOf(iFuture).
			SetError(future.BadRequest, "billing data invalid", nil).
			Send()
		return
	}

	// keep whatever the buyer entered, complete or not
	billing := data.Billing
	session.Billing = &billing

	if missing := billing.MissingFields(); len(missing) > 0 {
		metric.CheckoutRejected.WithLabelValues("billing_incomplete").Inc()
		future.FactoryOf(iFuture).
			SetError(future.ValidationError,
				"billing details incomplete: "+strings.Join(missing, ", "), nil).
			Send()
		return
	}

	nextState := state.StateOf(event.Action())
	if nextState == nil {
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "no transition for accepted action", nil).
			Send()
		return
	}

	state.SetSessionState(session, entities.SessionInProgressStatus, nextState.Index())
	future.FactoryOf(iFuture).SetData(session).Send()
}
