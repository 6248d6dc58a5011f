package entities

import (
	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// VendorGroup is the subset of a cart belonging to one seller, treated as one
// settlement unit. Groups are derived, never stored: recomputed from the cart
// on every pass. Every cart item belongs to exactly one group and the sum of
// all group totals equals the cart grand total.
type VendorGroup struct {
	SellerId       uint64
	StoreName      string
	Items          []*CartItem
	Total          decimal.Decimal
	ResolvedMethod payment.Method
	// what the buyer must be shown for the resolved method; attached when
	// methods are resolved in the payment state
	Directive payment.Directive
}
