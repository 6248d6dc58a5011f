package future

import (
	"context"
	"time"
)

type ErrorCode int32

const (
	BadRequest      ErrorCode = 400
	Forbidden       ErrorCode = 403
	NotFound        ErrorCode = 404
	NotAccepted     ErrorCode = 406
	Conflict        ErrorCode = 409
	ValidationError ErrorCode = 422
	InternalError   ErrorCode = 500
)

// IFuture is a single-delivery awaitable. Producers complete it through the
// Builder; consumers block on Get or one of its bounded variants. The
// processing step of the checkout flow and every service call of this module
// deliver their outcome through it.
type IFuture interface {
	Get() IDataFuture
	GetTimeout(duration time.Duration) IDataFuture
	// GetContext waits until delivery or ctx cancellation, whichever comes
	// first, returning nil when the ctx wins.
	GetContext(ctx context.Context) IDataFuture
	Count() int
	Capacity() int
}

type IDataFuture interface {
	Data() interface{}
	Error() IErrorFuture
}

type IErrorFuture interface {
	Code() ErrorCode
	Message() string
	Reason() error
}
