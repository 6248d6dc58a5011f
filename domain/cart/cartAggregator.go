package cart

import (
	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// ICartAggregator partitions the flat cart into one vendor group per distinct
// seller and resolves each group's effective payment method. Both operations
// are pure: no side effects, no storage access, and recomputing on unchanged
// inputs yields identical results.
type ICartAggregator interface {
	// Aggregate groups items by seller id, in order of first appearance.
	// Store name is taken from the first item of each seller; group total is
	// the sum of item subtotals. An empty cart yields zero groups.
	Aggregate(items []*entities.CartItem) []*entities.VendorGroup

	// ResolveMethods sets each group's resolved method from the seller's
	// enabled-methods configuration, the buyer's in-session selection and the
	// first item's default, per the three-tier fallback. A missing or empty
	// seller profile falls back to the default allowed set.
	ResolveMethods(groups []*entities.VendorGroup,
		profiles map[uint64]*entities.SellerProfile,
		selections map[uint64]payment.Method)

	// GrandTotal is the sum of price times quantity over all items.
	GrandTotal(items []*entities.CartItem) decimal.Decimal
}

func NewAggregator() ICartAggregator {
	return &cartAggregatorImpl{resolver: payment.NewResolver()}
}
