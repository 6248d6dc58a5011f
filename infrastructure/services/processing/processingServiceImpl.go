package processing_service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

type iProcessingServiceImpl struct {
	delay time.Duration
}

func (service iProcessingServiceImpl) ConfirmSettlement(ctx context.Context, sessionId string) future.IFuture {
	iFuture := future.Factory().SetCapacity(1).Build()

	go func() {
		timer := time.NewTimer(service.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			future.FactoryOf(iFuture).SetData(sessionId).Send()
		case <-ctx.Done():
			future.FactoryOf(iFuture).
				SetError(future.NotAccepted, "settlement confirmation canceled", errors.Wrap(ctx.Err(), "")).
				Send()
		}
	}()

	return iFuture
}
