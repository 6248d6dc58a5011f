package applog

import (
	"go.uber.org/zap"
)

var GLog struct {
	ZapLogger *zap.Logger
	Logger    *zap.SugaredLogger
}

func init() {
	GLog.ZapLogger = InitZap()
	GLog.Logger = GLog.ZapLogger.Sugar()
}

func InitZap() (zapLogger *zap.Logger) {
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	conf.DisableCaller = true
	conf.DisableStacktrace = true
	zapLogger, e := conf.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if e != nil {
		panic(e)
	}
	return
}
