package state_01

import (
	"context"
	"fmt"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/app"
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
	stateName  string = "Review"
	stateIndex int    = 1
)

type reviewState struct {
	*states.BaseStateImpl
}

func New(childes, parents []states.IState, actionStateMap map[actions.IAction]states.IState) states.IState {
	return &reviewState{states.NewBaseState(stateName, stateIndex, childes, parents, actionStateMap)}
}

func NewFrom(base *states.BaseStateImpl) states.IState {
	return &reviewState{base}
}

func (state reviewState) Process(ctx context.Context, iFrame frame.IFrame) {
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

	// a frame without an event is the flow entry: present the vendor groups
	if !iFrame.Header().KeyExists(string(frame.HeaderEvent)) {
		state.refreshGroups(ctx, session)
		state.SetSessionState(session, entities.SessionInProgressStatus, state.Index())
		future.FactoryOf(iFuture).SetData(session).Send()
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

	// cart emptied while reviewing: close the flow, the caller shows the
	// empty-cart view
	if len(session.Cart) == 0 {
		metric.CheckoutRejected.WithLabelValues("empty_cart").Inc()
		state.SetSessionState(session, entities.SessionClosedStatus, state.Index())
		future.FactoryOf(iFuture).
			SetError(future.NotAccepted, "cart is empty", nil).
			Send()
		return
	}

	state.refreshGroups(ctx, session)

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

func (state reviewState) refreshGroups(ctx context.Context, session *entities.CheckoutSession) {
	session.Groups = app.Globals.CartAggregator.Aggregate(session.Cart)
	app.Globals.CartAggregator.ResolveMethods(session.Groups,
		sellerProfilesOf(ctx, session), session.Selections)
}

func sellerProfilesOf(ctx context.Context, session *entities.CheckoutSession) map[uint64]*entities.SellerProfile {
	sellerIds := make([]uint64, 0, len(session.Groups))
	for _, group := range session.Groups {
		sellerIds = append(sellerIds, group.SellerId)
	}

	futureData := app.Globals.SellerService.GetSellerProfiles(ctx, sellerIds).Get()
	if futureData == nil || futureData.Error() != nil {
		// unknown sellers resolve through the default allowed set
		applog.GLog.Logger.Warnw("seller profiles lookup failed, using defaults",
			"sessionId", session.SessionId)
		return map[uint64]*entities.SellerProfile{}
	}

	return futureData.Data().(map[uint64]*entities.SellerProfile)
}
