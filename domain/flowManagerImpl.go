package domain

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	buyer_action "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions/buyer"
	system_action "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions/system"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/events"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states/state_01"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states/state_10"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states/state_20"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states/state_30"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states/state_40"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/frame"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/metric"
)

type iFlowManagerImpl struct {
	statesMap map[states.IEnumState]states.IState
	indexMap  map[int]states.IState
	lock      sync.Mutex
	sessions  map[string]*entities.CheckoutSession
}

func NewFlowManager() (IFlowManager, error) {
	flowManager := &iFlowManagerImpl{
		statesMap: make(map[states.IEnumState]states.IState, 8),
		indexMap:  make(map[int]states.IState, 8),
		sessions:  make(map[string]*entities.CheckoutSession, 32),
	}
	flowManager.setupCheckoutStateMachine()
	return flowManager, nil
}

// setupCheckoutStateMachine builds the flow bottom-up so each state holds
// direct references to its childes. Transitions are strictly forward.
func (flowManager *iFlowManagerImpl) setupCheckoutStateMachine() {
	emptyState := []states.IState{}

	checkoutSuccessState := state_40.New(emptyState, emptyState,
		map[actions.IAction]states.IState{})

	// Confirm re-enters processing (retry after an interrupted confirmation);
	// Fail keeps the session here, cart untouched
	processingState := state_30.New([]states.IState{checkoutSuccessState}, emptyState,
		map[actions.IAction]states.IState{
			system_action.New(system_action.Success): checkoutSuccessState,
			system_action.New(system_action.Fail):    nil,
			buyer_action.New(buyer_action.Confirm):   nil,
		})

	// SelectMethod re-enters the payment state, hence the nil target
	paymentState := state_20.New([]states.IState{processingState}, emptyState,
		map[actions.IAction]states.IState{
			buyer_action.New(buyer_action.SelectMethod): nil,
			buyer_action.New(buyer_action.Confirm):      processingState,
		})

	billingState := state_10.New([]states.IState{paymentState}, emptyState,
		map[actions.IAction]states.IState{
			buyer_action.New(buyer_action.SubmitBilling): paymentState,
		})

	reviewState := state_01.New([]states.IState{billingState}, emptyState,
		map[actions.IAction]states.IState{
			buyer_action.New(buyer_action.Next): billingState,
		})

	flowManager.statesMap[states.Review] = reviewState
	flowManager.statesMap[states.Billing] = billingState
	flowManager.statesMap[states.Payment] = paymentState
	flowManager.statesMap[states.Processing] = processingState
	flowManager.statesMap[states.CheckoutSuccess] = checkoutSuccessState

	for enumState, state := range flowManager.statesMap {
		flowManager.indexMap[enumState.StateIndex()] = state
	}
}

func (flowManager *iFlowManagerImpl) Begin(ctx context.Context,
	session *entities.CheckoutSession) future.IFuture {
	if session == nil {
		return future.Factory().SetCapacity(1).
			SetError(future.BadRequest, "session required", nil).
			BuildAndSend()
	}

	if len(session.Cart) == 0 {
		metric.CheckoutRejected.WithLabelValues("empty_cart").Inc()
		return future.Factory().SetCapacity(1).
			SetError(future.NotAccepted, "cart is empty", nil).
			BuildAndSend()
	}

	flowManager.lock.Lock()
	for _, tracked := range flowManager.sessions {
		if tracked.BuyerId == session.BuyerId && tracked.Status != entities.SessionClosedStatus {
			flowManager.lock.Unlock()
			return future.Factory().SetCapacity(1).
				SetError(future.NotAccepted, "buyer already has an open checkout", nil).
				BuildAndSend()
		}
	}

	if session.SessionId == "" {
		session.SessionId = uuid.NewString()
	}
	session.Status = entities.SessionNewStatus
	session.CreatedAt = time.Now().UTC()
	flowManager.sessions[session.SessionId] = session
	flowManager.lock.Unlock()

	metric.CheckoutStarted.Inc()
	applog.GLog.Logger.Infow("checkout begin",
		"sessionId", session.SessionId, "buyerId", session.BuyerId,
		"items", len(session.Cart))

	iFuture := future.Factory().SetCapacity(1).Build()
	iFrame := frame.Factory().SetSession(session).SetFuture(iFuture).Build()
	flowManager.dispatch(ctx, session, flowManager.statesMap[states.Review], iFrame)
	return iFuture
}

func (flowManager *iFlowManagerImpl) Handle(ctx context.Context,
	event events.IEvent) future.IFuture {
	if event == nil || event.Action() == nil {
		return future.Factory().SetCapacity(1).
			SetError(future.BadRequest, "event required", nil).
			BuildAndSend()
	}

	flowManager.lock.Lock()
	session, ok := flowManager.sessions[event.SessionId()]
	flowManager.lock.Unlock()
	if !ok {
		return future.Factory().SetCapacity(1).
			SetError(future.NotFound, "checkout session not found", nil).
			BuildAndSend()
	}

	if session.Status == entities.SessionClosedStatus {
		return future.Factory().SetCapacity(1).
			SetError(future.NotAccepted, "checkout session already closed", nil).
			BuildAndSend()
	}

	state, ok := flowManager.indexMap[session.StateIndex]
	if !ok {
		return future.Factory().SetCapacity(1).
			SetError(future.InternalError, "session state index unknown", nil).
			BuildAndSend()
	}

	iFuture := future.Factory().SetCapacity(1).Build()
	iFrame := frame.Factory().SetSession(session).SetFuture(iFuture).SetEvent(event).Build()
	flowManager.dispatch(ctx, session, state, iFrame)
	return iFuture
}

// Close is the system Close action, applied by the flow manager itself rather
// than routed through a state: a tracked session is by definition pre-terminal
// and closing is valid everywhere before settlement.
func (flowManager *iFlowManagerImpl) Close(ctx context.Context, sessionId string) future.IFuture {
	flowManager.lock.Lock()
	session, ok := flowManager.sessions[sessionId]
	if !ok {
		flowManager.lock.Unlock()
		return future.Factory().SetCapacity(1).
			SetError(future.NotFound, "checkout session not found", nil).
			BuildAndSend()
	}
	delete(flowManager.sessions, sessionId)
	flowManager.lock.Unlock()

	closeAction := system_action.New(system_action.Close)
	session.UpdatedAt = time.Now().UTC()
	session.Status = entities.SessionClosedStatus

	metric.CheckoutAbandoned.Inc()
	applog.GLog.Logger.Infow("checkout closed before settlement",
		"sessionId", session.SessionId, "buyerId", session.BuyerId,
		"action", closeAction.ActionEnum().Name(), "stateIndex", session.StateIndex)

	return future.Factory().SetCapacity(1).SetData(session).BuildAndSend()
}

func (flowManager *iFlowManagerImpl) SessionOf(sessionId string) *entities.CheckoutSession {
	flowManager.lock.Lock()
	defer flowManager.lock.Unlock()
	return flowManager.sessions[sessionId]
}

func (flowManager *iFlowManagerImpl) dispatch(ctx context.Context,
	session *entities.CheckoutSession, state states.IState, iFrame frame.IFrame) {
	state.Process(ctx, iFrame)

	if session.Status == entities.SessionClosedStatus {
		flowManager.lock.Lock()
		delete(flowManager.sessions, session.SessionId)
		flowManager.lock.Unlock()
	}
}
