package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// CartItem is a product snapshot plus the buyer's selection, held in the
// session's flat cart list. It is mutated (quantity) or removed only while the
// checkout is in the review state.
type CartItem struct {
	ItemId        uint64          `bson:"itemId"`
	ProductId     string          `bson:"productId"`
	Title         string          `bson:"title"`
	Image         string          `bson:"image"`
	Size          string          `bson:"size"`
	Currency      string          `bson:"currency"`
	SellerId      uint64          `bson:"sellerId"`
	StoreName     string          `bson:"storeName"`
	DefaultMethod payment.Method  `bson:"defaultMethod"`
	UnitPrice     decimal.Decimal `bson:"unitPrice"`
	Stock         int32           `bson:"stock"`
	Quantity      int32           `bson:"quantity"`
	CreatedAt     time.Time       `bson:"createdAt"`
}

// Subtotal is unit price times quantity, exact with no display rounding.
func (item CartItem) Subtotal() decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
}
