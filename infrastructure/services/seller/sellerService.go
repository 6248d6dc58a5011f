package seller_service

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

// ISellerService reads registered seller profiles, primarily for the
// enabled-payment-methods of each vendor group. A NotFound result is not an
// error to the flow: callers substitute the default allowed method set.
type ISellerService interface {
	// GetSellerProfile delivers *entities.SellerProfile.
	GetSellerProfile(ctx context.Context, sellerId uint64) future.IFuture

	// GetSellerProfiles delivers map[uint64]*entities.SellerProfile for the
	// requested ids; unknown sellers are simply absent from the map.
	GetSellerProfiles(ctx context.Context, sellerIds []uint64) future.IFuture
}

// NewSellerService builds a registry-backed service from the seller list the
// embedding application supplies.
func NewSellerService(profiles []*entities.SellerProfile) ISellerService {
	registry := make(map[uint64]*entities.SellerProfile, len(profiles))
	for _, profile := range profiles {
		registry[profile.SellerId] = profile
	}
	return &iSellerServiceImpl{registry: registry}
}
