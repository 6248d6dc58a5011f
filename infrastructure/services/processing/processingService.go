package processing_service

import (
	"context"
	"time"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

// IProcessingService is the settlement-confirmation wait of the processing
// state. The default implementation simulates a gateway that always confirms
// after a fixed delay; the future carries error codes so a real gateway
// callback (success, failure, timeout) can replace it without reshaping the
// state machine.
type IProcessingService interface {
	// ConfirmSettlement delivers the session id on confirmation. The timer is
	// released on every exit path: ctx cancellation completes the future with
	// an error instead of leaking the countdown.
	ConfirmSettlement(ctx context.Context, sessionId string) future.IFuture
}

func NewProcessingService(delay time.Duration) IProcessingService {
	return &iProcessingServiceImpl{delay: delay}
}
