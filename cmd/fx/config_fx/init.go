package config_fx

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"safarsathi/internal/config"
)

var Module = fx.Provide(
	provideConfig,
	provideLogger)

func provideConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return config.Load()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}
