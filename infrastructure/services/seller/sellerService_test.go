package seller_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

func registryFixture() []*entities.SellerProfile {
	return []*entities.SellerProfile{
		{SellerId: 7, StoreName: "Crafted Goods",
			EnabledMethods: []payment.Method{payment.BankTransfer, payment.Card}},
		{SellerId: 9, StoreName: "Bright Home",
			EnabledMethods: []payment.Method{payment.PayOnDelivery}},
	}
}

func TestGetSellerProfile(t *testing.T) {
	service := NewSellerService(registryFixture())

	futureData := service.GetSellerProfile(context.Background(), 7).Get()
	require.Nil(t, futureData.Error())

	profile := futureData.Data().(*entities.SellerProfile)
	require.Equal(t, "Crafted Goods", profile.StoreName)
}

func TestGetSellerProfile_NotFound(t *testing.T) {
	service := NewSellerService(registryFixture())

	futureData := service.GetSellerProfile(context.Background(), 1).Get()
	require.NotNil(t, futureData.Error())
	require.Equal(t, future.NotFound, futureData.Error().Code())
}

func TestGetSellerProfiles_UnknownIdsAbsent(t *testing.T) {
	service := NewSellerService(registryFixture())

	futureData := service.GetSellerProfiles(context.Background(), []uint64{7, 9, 1}).Get()
	require.Nil(t, futureData.Error())

	profiles := futureData.Data().(map[uint64]*entities.SellerProfile)
	require.Len(t, profiles, 2)
	require.Contains(t, profiles, uint64(7))
	require.NotContains(t, profiles, uint64(1))
}
