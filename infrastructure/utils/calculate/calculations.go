package calculate

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// Breakdown is the settlement split of one line item. The conservation
// invariant Commission + Tax + Net == Amount holds for every breakdown.
type Breakdown struct {
	Amount     decimal.Decimal
	Commission decimal.Decimal
	Tax        decimal.Decimal
	Net        decimal.Decimal
}

// ISettlementCalculator materializes transaction records from cart line items
// using the site rate snapshot in effect at the moment of settlement.
type ISettlementCalculator interface {
	// SettleItem produces the transaction candidate of a single line item.
	// The method is the one resolved for the item's vendor group at
	// confirmation time; the transaction id and timestamp are captured here,
	// not at cart-add time.
	SettleItem(ctx context.Context, item *entities.CartItem, method payment.Method,
		session *entities.CheckoutSession) (*entities.Transaction, error)

	// SettleSession settles every line item of the session's cart, one
	// transaction per item, grouped methods taken from the session's resolved
	// vendor groups.
	SettleSession(ctx context.Context, session *entities.CheckoutSession) ([]*entities.Transaction, error)
}

// BreakdownOf computes the settlement split of unitPrice×quantity under the
// given rates. Tax is zero when disabled; nothing is rounded beyond what the
// decimal representation carries.
func BreakdownOf(unitPrice decimal.Decimal, quantity int32, config entities.SiteConfig) Breakdown {
	amount := unitPrice.Mul(decimal.NewFromInt32(quantity))
	commission := amount.Mul(config.CommissionRate)

	tax := decimal.Zero
	if config.TaxEnabled {
		tax = amount.Mul(config.TaxRate)
	}

	return Breakdown{
		Amount:     amount,
		Commission: commission,
		Tax:        tax,
		Net:        amount.Sub(commission).Sub(tax),
	}
}

func New() ISettlementCalculator {
	return &settlementCalculatorImpl{}
}
