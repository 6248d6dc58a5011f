package processing_service

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

type iProcessingServiceMock struct {
}

// NewProcessingServiceMock confirms immediately.
func NewProcessingServiceMock() IProcessingService {
	return &iProcessingServiceMock{}
}

func (mock iProcessingServiceMock) ConfirmSettlement(ctx context.Context, sessionId string) future.IFuture {
	return future.Factory().SetCapacity(1).SetData(sessionId).BuildAndSend()
}
