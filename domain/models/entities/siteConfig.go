package entities

import (
	"github.com/shopspring/decimal"
)

// SiteConfig is the platform-wide rate configuration, supplied by the caller
// and read-only from this module's perspective. Rates are fractions in [0, 1].
type SiteConfig struct {
	CommissionRate   decimal.Decimal `bson:"commissionRate"`
	TaxEnabled       bool            `bson:"taxEnabled"`
	TaxRate          decimal.Decimal `bson:"taxRate"`
	AdminBankDetails string          `bson:"adminBankDetails"`
	Currency         string          `bson:"currency"`
}
