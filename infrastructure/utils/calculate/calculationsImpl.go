package calculate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

type settlementCalculatorImpl struct {
}

func (calculator settlementCalculatorImpl) SettleItem(ctx context.Context,
	item *entities.CartItem, method payment.Method,
	session *entities.CheckoutSession) (*entities.Transaction, error) {

	if session.Billing == nil {
		return nil, errors.New("billing details not set on session")
	}

	breakdown := BreakdownOf(item.UnitPrice, item.Quantity, session.Config)

	return &entities.Transaction{
		TransactionId: uuid.New().String(),
		ProductId:     item.ProductId,
		Title:         item.Title,
		SellerId:      item.SellerId,
		StoreName:     item.StoreName,
		BuyerId:       session.BuyerId,
		Amount:        breakdown.Amount,
		Commission:    breakdown.Commission,
		Tax:           breakdown.Tax,
		Net:           breakdown.Net,
		Currency:      item.Currency,
		Method:        method,
		DeliveryType:  session.DeliveryType,
		Billing:       *session.Billing,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (calculator settlementCalculatorImpl) SettleSession(ctx context.Context,
	session *entities.CheckoutSession) ([]*entities.Transaction, error) {

	if len(session.Groups) == 0 {
		return nil, errors.New("session has no vendor groups")
	}

	transactions := make([]*entities.Transaction, 0, len(session.Cart))
	for _, group := range session.Groups {
		for _, item := range group.Items {
			transaction, err := calculator.SettleItem(ctx, item, group.ResolvedMethod, session)
			if err != nil {
				return nil, errors.Wrapf(err, "settle item %d of seller %d failed",
					item.ItemId, group.SellerId)
			}
			transactions = append(transactions, transaction)
		}
	}

	return transactions, nil
}
