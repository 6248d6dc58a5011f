package events

import (
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// SubmitBillingData carries the buyer-entered billing record into the billing
// state.
type SubmitBillingData struct {
	Billing entities.BillingDetails
}

// SelectMethodData carries an explicit per-vendor method selection into the
// payment state.
type SelectMethodData struct {
	SellerId uint64
	Method   payment.Method
}

// ConfirmData carries the final confirmation of the payment step.
type ConfirmData struct {
	DeliveryType string
}
