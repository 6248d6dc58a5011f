package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

func testCart() []*entities.CartItem {
	return []*entities.CartItem{
		{
			ItemId: 1, ProductId: "p-100", Title: "Leather Satchel",
			SellerId: 7, StoreName: "Crafted Goods",
			DefaultMethod: payment.BankTransfer,
			UnitPrice:     decimal.NewFromInt(1000), Quantity: 2, Currency: "₦",
		},
		{
			ItemId: 2, ProductId: "p-200", Title: "Desk Lamp",
			SellerId: 9, StoreName: "Bright Home",
			DefaultMethod: payment.PayOnDelivery,
			UnitPrice:     decimal.NewFromInt(450), Quantity: 1, Currency: "₦",
		},
		{
			ItemId: 3, ProductId: "p-101", Title: "Canvas Belt",
			SellerId: 7, StoreName: "Crafted Goods",
			DefaultMethod: payment.BankTransfer,
			UnitPrice:     decimal.NewFromInt(250), Quantity: 4, Currency: "₦",
		},
	}
}

func TestAggregate_GroupsBySellerFirstAppearance(t *testing.T) {
	aggregator := NewAggregator()
	groups := aggregator.Aggregate(testCart())

	require.Len(t, groups, 2)
	require.Equal(t, uint64(7), groups[0].SellerId)
	require.Equal(t, uint64(9), groups[1].SellerId)
	require.Equal(t, "Crafted Goods", groups[0].StoreName)
	require.Len(t, groups[0].Items, 2)
	require.Len(t, groups[1].Items, 1)
}

func TestAggregate_GroupTotalsPartitionGrandTotal(t *testing.T) {
	aggregator := NewAggregator()
	items := testCart()
	groups := aggregator.Aggregate(items)

	grandTotal := aggregator.GrandTotal(items)
	require.True(t, grandTotal.Equal(decimal.NewFromInt(3450)))

	summed := decimal.Zero
	itemCount := 0
	for _, group := range groups {
		summed = summed.Add(group.Total)
		itemCount += len(group.Items)
	}
	require.True(t, summed.Equal(grandTotal), "group totals must partition the grand total")
	require.Equal(t, len(items), itemCount, "every item belongs to exactly one group")

	require.True(t, groups[0].Total.Equal(decimal.NewFromInt(3000)))
	require.True(t, groups[1].Total.Equal(decimal.NewFromInt(450)))
}

func TestAggregate_EmptyCart(t *testing.T) {
	aggregator := NewAggregator()
	groups := aggregator.Aggregate(nil)
	require.Empty(t, groups)
	require.True(t, aggregator.GrandTotal(nil).IsZero())
}

func TestAggregate_Idempotent(t *testing.T) {
	aggregator := NewAggregator()
	items := testCart()

	first := aggregator.Aggregate(items)
	second := aggregator.Aggregate(items)

	require.Len(t, second, len(first))
	for ordinal := range first {
		require.Equal(t, first[ordinal].SellerId, second[ordinal].SellerId)
		require.True(t, first[ordinal].Total.Equal(second[ordinal].Total))
		require.Len(t, second[ordinal].Items, len(first[ordinal].Items))
	}
}

func TestResolveMethods_PerGroupIndependence(t *testing.T) {
	aggregator := NewAggregator()
	groups := aggregator.Aggregate(testCart())

	profiles := map[uint64]*entities.SellerProfile{
		7: {SellerId: 7, EnabledMethods: []payment.Method{payment.BankTransfer, payment.Card}},
		9: {SellerId: 9, EnabledMethods: []payment.Method{payment.PayOnDelivery, payment.Wallet}},
	}
	selections := map[uint64]payment.Method{
		7: payment.Card,
		9: payment.USSD, // not enabled for seller 9, falls through
	}

	aggregator.ResolveMethods(groups, profiles, selections)

	require.Equal(t, payment.Card, groups[0].ResolvedMethod)
	require.Equal(t, payment.PayOnDelivery, groups[1].ResolvedMethod)
}

func TestResolveMethods_MissingProfileUsesDefaultSet(t *testing.T) {
	aggregator := NewAggregator()
	groups := aggregator.Aggregate(testCart())

	aggregator.ResolveMethods(groups, map[uint64]*entities.SellerProfile{}, nil)

	// both sellers resolve inside the default allowed set
	require.Equal(t, payment.BankTransfer, groups[0].ResolvedMethod)
	require.Equal(t, payment.BankTransfer, groups[1].ResolvedMethod)
}
