package cart

import (
	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

type cartAggregatorImpl struct {
	resolver payment.IMethodResolver
}

func (aggregator cartAggregatorImpl) Aggregate(items []*entities.CartItem) []*entities.VendorGroup {
	groups := make([]*entities.VendorGroup, 0, 8)
	groupMap := make(map[uint64]*entities.VendorGroup, 8)

	for _, item := range items {
		group, ok := groupMap[item.SellerId]
		if !ok {
			group = &entities.VendorGroup{
				SellerId:  item.SellerId,
				StoreName: item.StoreName,
				Items:     make([]*entities.CartItem, 0, 4),
				Total:     decimal.Zero,
			}
			groupMap[item.SellerId] = group
			groups = append(groups, group)
		}
		group.Items = append(group.Items, item)
		group.Total = group.Total.Add(item.Subtotal())
	}

	return groups
}

func (aggregator cartAggregatorImpl) ResolveMethods(groups []*entities.VendorGroup,
	profiles map[uint64]*entities.SellerProfile,
	selections map[uint64]payment.Method) {

	for _, group := range groups {
		var enabled []payment.Method
		if profile, ok := profiles[group.SellerId]; ok && profile != nil {
			enabled = profile.EnabledMethods
		}

		var selection *payment.Method
		if method, ok := selections[group.SellerId]; ok {
			selection = &method
		}

		// item default comes from the first item of the group, same slot the
		// store name is taken from
		group.ResolvedMethod = aggregator.resolver.EffectiveMethod(enabled, selection,
			group.Items[0].DefaultMethod)
	}
}

func (aggregator cartAggregatorImpl) GrandTotal(items []*entities.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
