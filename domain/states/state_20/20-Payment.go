package state_20

import (
	"context"
	"fmt"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/app"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	buyer_action "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions/buyer"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/events"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/frame"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
)

const (
	stateName  string = "Payment"
	stateIndex int    = 20
)

type paymentState struct {
	*states.BaseStateImpl
}

func New(childes, parents []states.IState, actionStateMap map[actions.IAction]states.IState) states.IState {
	return &paymentState{states.NewBaseState(stateName, stateIndex, childes, parents, actionStateMap)}
}

func NewFrom(base *states.BaseStateImpl) states.IState {
	return &paymentState{base}
}

func (state paymentState) Process(ctx context.Context, iFrame frame.IFrame) {
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

	switch event.Action().ActionEnum().Name() {
	case buyer_action.SelectMethod.Name():
		data, ok := event.Data().(events.SelectMethodData)
		if !ok {
			future.FactoryOf(iFuture).
				SetError(future.BadRequest, "method selection data invalid", nil).
				Send()
			return
		}

		session.Select(data.SellerId, data.Method)
		state.refreshMethods(ctx, session)
		future.FactoryOf(iFuture).SetData(session).Send()

	case buyer_action.Confirm.Name():
		if data, ok := event.Data().(events.ConfirmData); ok && data.DeliveryType != "" {
			session.DeliveryType = data.DeliveryType
		}
		if session.DeliveryType == "" {
			session.DeliveryType = app.Globals.Config.Checkout.DefaultDeliveryType
		}

		// methods are resolved at confirmation time, against the seller
		// configuration in effect now
		state.refreshMethods(ctx, session)

		nextState := state.StateOf(event.Action())
		if nextState == nil {
			future.FactoryOf(iFuture).
				SetError(future.InternalError, "no transition for accepted action", nil).
				Send()
			return
		}

		state.SetSessionState(session, entities.SessionInProgressStatus, nextState.Index())
		nextState.Process(ctx, iFrame)

	default:
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "accepted action has no handler", nil).
			Send()
	}
}

func (state paymentState) refreshMethods(ctx context.Context, session *entities.CheckoutSession) {
	sellerIds := make([]uint64, 0, len(session.Groups))
	for _, group := range session.Groups {
		sellerIds = append(sellerIds, group.SellerId)
	}

	profiles := map[uint64]*entities.SellerProfile{}
	futureData := app.Globals.SellerService.GetSellerProfiles(ctx, sellerIds).Get()
	if futureData != nil && futureData.Error() == nil {
		profiles = futureData.Data().(map[uint64]*entities.SellerProfile)
	} else {
		applog.GLog.Logger.Warnw("seller profiles lookup failed, using defaults",
			"sessionId", session.SessionId)
	}

	app.Globals.CartAggregator.ResolveMethods(session.Groups, profiles, session.Selections)

	address := ""
	if session.Billing != nil {
		address = session.Billing.Address
	}
	for _, group := range session.Groups {
		group.Directive = payment.DirectiveOf(group.ResolvedMethod,
			session.Config.AdminBankDetails, address)
	}
}
