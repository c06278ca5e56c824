// Package logging builds the application's zap logger from LogConfig.
package logging

import (
	"fmt"

	"github.com/coder-yr/taste-link/config"
	"go.uber.org/zap"
)

// New returns a production (json) or development (console) logger at the
// configured level
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("logging: unknown LOG_LEVEL %q", cfg.Level)
	}

	return zapCfg.Build()
}
