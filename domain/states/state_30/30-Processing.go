package state_30

import (
	"context"
	"fmt"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/app"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	system_action "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions/system"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/events"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/frame"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
)

const (
	stateName  string = "Processing"
	stateIndex int    = 30
)

type processingState struct {
	*states.BaseStateImpl
}

func New(childes, parents []states.IState, actionStateMap map[actions.IAction]states.IState) states.IState {
	return &processingState{states.NewBaseState(stateName, stateIndex, childes, parents, actionStateMap)}
}

func NewFrom(base *states.BaseStateImpl) states.IState {
	return &processingState{base}
}

func (state processingState) Process(ctx context.Context, iFrame frame.IFrame) {
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

	// only an explicit confirmation re-enters this state (first entry chains
	// through the payment state, re-entry is a retry after an interrupted
	// confirmation); anything else is refused
	if iFrame.Header().KeyExists(string(frame.HeaderEvent)) {
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
	}

	state.SetSessionState(session, entities.SessionInProgressStatus, state.Index())

	futureData := app.Globals.ProcessingService.ConfirmSettlement(ctx, session.SessionId).Get()
	if futureData == nil {
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "settlement confirmation channel closed", nil).
			Send()
		return
	}

	if futureData.Error() != nil {
		// canceled or refused is the Fail transition, which has no target:
		// the session stays here for a retry or an explicit close, cart
		// untouched
		if failState := state.StateOf(system_action.New(system_action.Fail)); failState != nil {
			state.SetSessionState(session, entities.SessionInProgressStatus, failState.Index())
		}
		applog.GLog.Logger.Warnw("settlement confirmation failed",
			"sessionId", session.SessionId,
			"error", futureData.Error().Reason())
		future.FactoryOf(iFuture).SetErrorOf(futureData.Error()).Send()
		return
	}

	nextState := state.StateOf(system_action.New(system_action.Success))
	if nextState == nil {
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "no transition for settlement success", nil).
			Send()
		return
	}

	state.SetSessionState(session, entities.SessionInProgressStatus, nextState.Index())
	nextState.Process(ctx, iFrame)
}
