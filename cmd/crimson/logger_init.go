package main

import (
	"github.com/osse101/crimson/internal/config"
	"github.com/osse101/crimson/internal/logger"
)

// initLogger initializes the logger from the environment's preset, with
// explicit app configuration taking precedence
func initLogger(cfg *config.Config) {
	preset := logger.ForEnvironment(cfg.Environment)

	loggerConfig := logger.NewConfig(
		valueOr(cfg.LogLevel, preset.Level),
		valueOr(cfg.LogFormat, preset.Format),
		valueOr(cfg.ServiceName, preset.ServiceName),
		valueOr(cfg.Version, preset.Version),
		preset.Environment,
		preset.AddSource,
	)

	logger.InitLogger(loggerConfig)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
