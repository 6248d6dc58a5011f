package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// Transaction is the settlement record materialized exactly once per cart
// line item when the checkout reaches its terminal state. It is append-only:
// never mutated here and never deleted (fulfillment-status updates happen
// downstream, outside this module).
//
// Commission and Tax are snapshots of amount times the site rates at
// materialization time; they are recorded as seller-side accounting
// deductions. The buyer-facing charge is always the gross Amount — the source
// system never settles them in either direction and this module deliberately
// keeps that ambiguity.
type Transaction struct {
	TransactionId string          `bson:"transactionId"`
	ProductId     string          `bson:"productId"`
	Title         string          `bson:"title"`
	SellerId      uint64          `bson:"sellerId"`
	StoreName     string          `bson:"storeName"`
	BuyerId       uint64          `bson:"buyerId"`
	Amount        decimal.Decimal `bson:"amount"`
	Commission    decimal.Decimal `bson:"commission"`
	Tax           decimal.Decimal `bson:"tax"`
	Net           decimal.Decimal `bson:"net"`
	Currency      string          `bson:"currency"`
	Method        payment.Method  `bson:"method"`
	DeliveryType  string          `bson:"deliveryType"`
	Billing       BillingDetails  `bson:"billing"`
	CreatedAt     time.Time       `bson:"createdAt"`
}
