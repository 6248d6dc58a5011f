package events

import (
	"time"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/actions"
)

type BaseEventImpl struct {
	EType      EventType
	ESessionId string
	EBuyerId   uint64
	EAction    actions.IAction
	ETimestamp time.Time
	EData      interface{}
}

func New(eventType EventType, sessionId string, buyerId uint64, action actions.IAction,
	timestamp time.Time, data interface{}) IEvent {
	return &BaseEventImpl{eventType, sessionId, buyerId, action, timestamp, data}
}

func (baseEvent BaseEventImpl) EventType() EventType {
	return baseEvent.EType
}

func (baseEvent BaseEventImpl) SessionId() string {
	return baseEvent.ESessionId
}

func (baseEvent BaseEventImpl) BuyerId() uint64 {
	return baseEvent.EBuyerId
}

func (baseEvent BaseEventImpl) Action() actions.IAction {
	return baseEvent.EAction
}

func (baseEvent BaseEventImpl) Timestamp() time.Time {
	return baseEvent.ETimestamp
}

func (baseEvent BaseEventImpl) Data() interface{} {
	return baseEvent.EData
}
