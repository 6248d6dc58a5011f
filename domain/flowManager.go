package domain

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/events"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

// IFlowManager drives checkout sessions through the state machine. One
// manager serves all buyers; each buyer has at most one active session.
type IFlowManager interface {
	// Begin opens the checkout flow for a cart. The session enters the
	// review state and the returned future resolves with the session, its
	// vendor groups aggregated and methods resolved. An empty cart or a
	// buyer with a flow already open is refused with NotAccepted.
	Begin(ctx context.Context, session *entities.CheckoutSession) future.IFuture

	// Handle routes a buyer confirmation event to the session's current
	// state. The future resolves with the updated session, or with the
	// materialized transactions once the terminal state closes the flow.
	Handle(ctx context.Context, event events.IEvent) future.IFuture

	// Close abandons a tracked session before the terminal state: the session
	// is marked closed and evicted so the buyer may begin a new checkout. The
	// cart and any entered billing data are left as they are; nothing is
	// materialized.
	Close(ctx context.Context, sessionId string) future.IFuture

	// SessionOf returns the tracked session, or nil when unknown or closed.
	SessionOf(sessionId string) *entities.CheckoutSession
}
