package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"rentwise/internal/config"
	"rentwise/internal/validation"
	"rentwise/pkg/logger"
)

var Module = fx.Provide(
	provideConfig, provideLogger, provideValidator)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Logging)
}

func provideValidator() *validation.Validator {
	return validation.New()
}
