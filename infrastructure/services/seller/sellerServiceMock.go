package seller_service

import (
	"context"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

type iSellerServiceMock struct {
	profiles map[uint64]*entities.SellerProfile
}

// NewSellerServiceMock answers every lookup from the given fixed map.
func NewSellerServiceMock(profiles map[uint64]*entities.SellerProfile) ISellerService {
	return &iSellerServiceMock{profiles: profiles}
}

func (mock iSellerServiceMock) GetSellerProfile(ctx context.Context, sellerId uint64) future.IFuture {
	if profile, ok := mock.profiles[sellerId]; ok {
		return future.Factory().SetCapacity(1).SetData(profile).BuildAndSend()
	}
	return future.Factory().SetCapacity(1).
		SetError(future.NotFound, "seller not found", nil).
		BuildAndSend()
}

func (mock iSellerServiceMock) GetSellerProfiles(ctx context.Context, sellerIds []uint64) future.IFuture {
	profiles := make(map[uint64]*entities.SellerProfile, len(sellerIds))
	for _, sellerId := range sellerIds {
		if profile, ok := mock.profiles[sellerId]; ok {
			profiles[sellerId] = profile
		}
	}
	return future.Factory().SetCapacity(1).SetData(profiles).BuildAndSend()
}
