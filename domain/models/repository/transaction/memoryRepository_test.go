package transaction_repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

func historyFixture() []*entities.Transaction {
	return []*entities.Transaction{
		{
			TransactionId: "tx-1", ProductId: "p-100", SellerId: 7, BuyerId: 42,
			Amount: decimal.NewFromInt(2000), Commission: decimal.NewFromInt(100),
			Tax: decimal.NewFromInt(150), Net: decimal.NewFromInt(1750),
			Method: payment.BankTransfer,
		},
		{
			TransactionId: "tx-2", ProductId: "p-200", SellerId: 9, BuyerId: 42,
			Amount: decimal.NewFromInt(450), Commission: decimal.NewFromFloat(22.5),
			Tax: decimal.NewFromFloat(33.75), Net: decimal.NewFromFloat(393.75),
			Method: payment.PayOnDelivery,
		},
		{
			TransactionId: "tx-3", ProductId: "p-300", SellerId: 7, BuyerId: 99,
			Amount: decimal.NewFromInt(100), Commission: decimal.NewFromInt(5),
			Tax: decimal.NewFromFloat(7.5), Net: decimal.NewFromFloat(87.5),
			Method: payment.Card,
		},
	}
}

func TestMemoryRepository_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	repository := NewMemoryRepository()

	require.NoError(t, repository.InsertAll(ctx, historyFixture()))

	count, err := repository.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	found, err := repository.FindById(ctx, "tx-2")
	require.NoError(t, err)
	require.Equal(t, uint64(9), found.SellerId)

	_, err = repository.FindById(ctx, "tx-404")
	require.Error(t, err)
}

func TestMemoryRepository_FindByParty(t *testing.T) {
	ctx := context.Background()
	repository := NewMemoryRepository()
	require.NoError(t, repository.InsertAll(ctx, historyFixture()))

	byBuyer, err := repository.FindByBuyerId(ctx, 42)
	require.NoError(t, err)
	require.Len(t, byBuyer, 2)

	bySeller, err := repository.FindBySellerId(ctx, 7)
	require.NoError(t, err)
	require.Len(t, bySeller, 2)

	none, err := repository.FindByBuyerId(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryRepository_AppendOnlyAcrossBatches(t *testing.T) {
	ctx := context.Background()
	repository := NewMemoryRepository()
	fixture := historyFixture()

	require.NoError(t, repository.InsertAll(ctx, fixture[:2]))
	require.NoError(t, repository.InsertAll(ctx, fixture[2:]))

	all, err := repository.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "tx-1", all[0].TransactionId)
	require.Equal(t, "tx-3", all[2].TransactionId)
}
