package transaction_repository

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
)

type iMemoryRepositoryImpl struct {
	mutex        sync.RWMutex
	transactions []*entities.Transaction
}

// NewMemoryRepository keeps the history in process memory, the authoritative
// mode for a single-session deployment.
func NewMemoryRepository() ITransactionRepository {
	return &iMemoryRepositoryImpl{
		transactions: make([]*entities.Transaction, 0, 64),
	}
}

func (repository *iMemoryRepositoryImpl) InsertAll(ctx context.Context, transactions []*entities.Transaction) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()
	repository.transactions = append(repository.transactions, transactions...)
	return nil
}

func (repository *iMemoryRepositoryImpl) FindById(ctx context.Context, transactionId string) (*entities.Transaction, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	for _, transaction := range repository.transactions {
		if transaction.TransactionId == transactionId {
			return transaction, nil
		}
	}
	return nil, errors.Errorf("transaction %s not found", transactionId)
}

func (repository *iMemoryRepositoryImpl) FindByBuyerId(ctx context.Context, buyerId uint64) ([]*entities.Transaction, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	found := make([]*entities.Transaction, 0, 16)
	for _, transaction := range repository.transactions {
		if transaction.BuyerId == buyerId {
			found = append(found, transaction)
		}
	}
	return found, nil
}

func (repository *iMemoryRepositoryImpl) FindBySellerId(ctx context.Context, sellerId uint64) ([]*entities.Transaction, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	found := make([]*entities.Transaction, 0, 16)
	for _, transaction := range repository.transactions {
		if transaction.SellerId == sellerId {
			found = append(found, transaction)
		}
	}
	return found, nil
}

func (repository *iMemoryRepositoryImpl) FindAll(ctx context.Context) ([]*entities.Transaction, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	found := make([]*entities.Transaction, len(repository.transactions))
	copy(found, repository.transactions)
	return found, nil
}

func (repository *iMemoryRepositoryImpl) Count(ctx context.Context) (int64, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	return int64(len(repository.transactions)), nil
}
