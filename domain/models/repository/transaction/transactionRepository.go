package transaction_repository

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
)

// ITransactionRepository is the append-only settlement history. Transactions
// are inserted exactly once at checkout completion and never updated or
// deleted here; fulfillment-status changes happen downstream of this module.
type ITransactionRepository interface {
	InsertAll(ctx context.Context, transactions []*entities.Transaction) error

	FindById(ctx context.Context, transactionId string) (*entities.Transaction, error)

	FindByBuyerId(ctx context.Context, buyerId uint64) ([]*entities.Transaction, error)

	FindBySellerId(ctx context.Context, sellerId uint64) ([]*entities.Transaction, error)

	FindAll(ctx context.Context) ([]*entities.Transaction, error)

	Count(ctx context.Context) (int64, error)
}
