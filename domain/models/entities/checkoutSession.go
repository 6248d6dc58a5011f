package entities

import (
	"time"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

type SessionStatus string

const (
	SessionNewStatus        SessionStatus = "NEW"
	SessionInProgressStatus SessionStatus = "IN_PROGRESS"
	SessionClosedStatus     SessionStatus = "CLOSED"
)

// CheckoutSession is the single active checkout flow of one buyer. It carries
// the flat cart, the derived vendor groups, the buyer's billing details and
// per-seller method selections, and finally the materialized transactions.
// There is exactly one active session per buyer; the flow manager owns it
// from Begin until the terminal state closes it.
type CheckoutSession struct {
	SessionId    string
	BuyerId      uint64
	Status       SessionStatus
	StateIndex   int
	Cart         []*CartItem
	Groups       []*VendorGroup
	Billing      *BillingDetails
	Selections   map[uint64]payment.Method
	DeliveryType string
	Config       SiteConfig
	Transactions []*Transaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SelectionOf returns the buyer's explicit in-session selection for a seller,
// or nil when the buyer never selected a method for that vendor group.
func (session *CheckoutSession) SelectionOf(sellerId uint64) *payment.Method {
	if session.Selections == nil {
		return nil
	}
	if method, ok := session.Selections[sellerId]; ok {
		return &method
	}
	return nil
}

func (session *CheckoutSession) Select(sellerId uint64, method payment.Method) {
	if session.Selections == nil {
		session.Selections = make(map[uint64]payment.Method, 4)
	}
	session.Selections[sellerId] = method
}
