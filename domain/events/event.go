package events

import (
	"time"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
)

type EventType int

const (
	ActionEvent EventType = iota
)

// IEvent is a buyer-triggered confirmation action entering the checkout flow.
type IEvent interface {
	EventType() EventType
	SessionId() string
	BuyerId() uint64
	Action() actions.IAction
	Timestamp() time.Time
	Data() interface{}
}
