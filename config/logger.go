package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger: JSON in production, colored console output otherwise
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		zcfg := zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "time"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return zcfg.Build()
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zcfg.Build()
}
