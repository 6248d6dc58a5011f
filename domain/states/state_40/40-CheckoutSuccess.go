package state_40

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/app"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/states"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/frame"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/metric"
)

const (
	stateName  string = "Checkout_Success"
	stateIndex int    = 40
)

type checkoutSuccessState struct {
	*states.BaseStateImpl
}

func New(childes, parents []states.IState, actionStateMap map[actions.IAction]states.IState) states.IState {
	return &checkoutSuccessState{states.NewBaseState(stateName, stateIndex, childes, parents, actionStateMap)}
}

func NewFrom(base *states.BaseStateImpl) states.IState {
	return &checkoutSuccessState{base}
}

func (state checkoutSuccessState) Process(ctx context.Context, iFrame frame.IFrame) {
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

	transactions, err := app.Globals.Calculator.SettleSession(ctx, session)
	if err != nil {
		applog.GLog.Logger.Errorw("session settlement failed",
			"sessionId", session.SessionId, "error", err)
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "session settlement failed", err).
			Send()
		return
	}

	if err := app.Globals.TransactionRepository.InsertAll(ctx, transactions); err != nil {
		applog.GLog.Logger.Errorw("transaction history insert failed",
			"sessionId", session.SessionId, "error", err)
		future.FactoryOf(iFuture).
			SetError(future.InternalError, "transaction history insert failed", err).
			Send()
		return
	}

	gross := decimalSum(transactions)
	metric.CheckoutSucceeded.Inc()
	metric.TransactionsMaterialized.Add(float64(len(transactions)))
	metric.SettledAmount.Add(gross)

	session.Transactions = transactions
	session.Cart = nil
	session.Groups = nil
	state.SetSessionState(session, entities.SessionClosedStatus, state.Index())

	applog.GLog.Logger.Infow("checkout settled",
		"sessionId", session.SessionId,
		"buyerId", session.BuyerId,
		"transactions", len(transactions),
		"gross", gross)

	future.FactoryOf(iFuture).SetData(transactions).Send()
}

func decimalSum(transactions []*entities.Transaction) float64 {
	var gross float64
	for _, transaction := range transactions {
		amount, _ := transaction.Amount.Float64()
		gross += amount
	}
	return gross
}
