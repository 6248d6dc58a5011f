package configs

import (
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
)

// Config is the operational configuration of the module. Business rates
// (commission, tax) are not here: they travel on entities.SiteConfig, passed
// explicitly with every session.
type Config struct {
	App struct {
		ServiceMode string `env:"MARKETPLACE_SERVICE_MODE"`
	}

	Checkout struct {
		// the fixed settlement-confirmation countdown of the processing state
		ProcessingDelaySeconds int    `env:"CHECKOUT_PROCESSING_DELAY_SECONDS"`
		DefaultDeliveryType    string `env:"CHECKOUT_DEFAULT_DELIVERY_TYPE"`
	}

	Mongo struct {
		Host              string `env:"MARKETPLACE_MONGO_HOST"`
		Port              int    `env:"MARKETPLACE_MONGO_PORT"`
		User              string `env:"MARKETPLACE_MONGO_USER"`
		Pass              string `env:"MARKETPLACE_MONGO_PASS"`
		Database          string `env:"MARKETPLACE_MONGO_DB"`
		ConnectionTimeout int    `env:"MARKETPLACE_MONGO_CONN_TIMEOUT"`
	}

	SQLite struct {
		Path string `env:"MARKETPLACE_SQLITE_PATH"`
	}
}

func LoadConfig(path string) (*Config, error) {
	var config = &Config{}

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			applog.GLog.Logger.Errorw("loading .env file failed", "path", path, "error", err)
		}
	} else if _, err := os.Stat("./.env"); err == nil {
		if err := godotenv.Load("./.env"); err != nil {
			applog.GLog.Logger.Errorw("loading .env file failed", "error", err)
		}
	}

	if _, err := env.UnmarshalFromEnviron(config); err != nil {
		return nil, err
	}

	if config.Checkout.ProcessingDelaySeconds <= 0 {
		config.Checkout.ProcessingDelaySeconds = 3
	}
	if config.Checkout.DefaultDeliveryType == "" {
		config.Checkout.DefaultDeliveryType = "standard"
	}

	return config, nil
}
