package entities

import (
	"time"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

type SellerProfile struct {
	SellerId       uint64           `bson:"sellerId"`
	StoreName      string           `bson:"storeName"`
	EnabledMethods []payment.Method `bson:"enabledMethods"`
	CreatedAt      time.Time        `bson:"createdAt"`
	UpdatedAt      time.Time        `bson:"updatedAt"`
}
