package seller_service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

type iSellerServiceImpl struct {
	registry map[uint64]*entities.SellerProfile
}

func (service iSellerServiceImpl) GetSellerProfile(ctx context.Context, sellerId uint64) future.IFuture {
	profile, ok := service.registry[sellerId]
	if !ok {
		return future.Factory().SetCapacity(1).
			SetError(future.NotFound, "seller not found", errors.Errorf("sellerId %d not registered", sellerId)).
			BuildAndSend()
	}

	return future.Factory().SetCapacity(1).SetData(profile).BuildAndSend()
}

func (service iSellerServiceImpl) GetSellerProfiles(ctx context.Context, sellerIds []uint64) future.IFuture {
	profiles := make(map[uint64]*entities.SellerProfile, len(sellerIds))
	for _, sellerId := range sellerIds {
		if profile, ok := service.registry[sellerId]; ok {
			profiles[sellerId] = profile
		}
	}

	return future.Factory().SetCapacity(1).SetData(profiles).BuildAndSend()
}
