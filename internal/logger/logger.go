package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a zap logger for the given mode. "production" gets the
// JSON production preset, anything else the console development preset.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
