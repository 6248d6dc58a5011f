package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/configs"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/cart"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/converter"
	transaction_repository "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/repository/transaction"
	applog "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/logger"
	processing_service "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/services/processing"
	seller_service "github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/services/seller"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/utils/calculate"
)

type CtxKey int

const (
	CtxBuyerID CtxKey = iota
	CtxSessionID
)

var Globals struct {
	Config                *configs.Config
	ZapLogger             *zap.Logger
	Logger                *zap.SugaredLogger
	CartAggregator        cart.ICartAggregator
	Calculator            calculate.ISettlementCalculator
	Converter             converter.IConverter
	SellerService         seller_service.ISellerService
	ProcessingService     processing_service.IProcessingService
	TransactionRepository transaction_repository.ITransactionRepository
}

// Setup wires the default collaborators: in-memory history, registry-less
// seller service and the fixed-delay processing simulation. Callers replace
// individual fields before building a flow manager when they need the mongo
// or sqlite history, a populated seller registry, or a real gateway.
func Setup(config *configs.Config) {
	Globals.Config = config
	Globals.ZapLogger = applog.GLog.ZapLogger
	Globals.Logger = applog.GLog.Logger
	Globals.CartAggregator = cart.NewAggregator()
	Globals.Calculator = calculate.New()
	Globals.Converter = converter.NewConverter()
	Globals.SellerService = seller_service.NewSellerService(nil)
	Globals.ProcessingService = processing_service.NewProcessingService(
		time.Duration(config.Checkout.ProcessingDelaySeconds) * time.Second)
	Globals.TransactionRepository = transaction_repository.NewMemoryRepository()
}
