package bootstrap

import (
	"log/slog"

	"expense-matching/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records which optional features are on. Credentials are never logged.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"log_level", cfg.Log.Level,
		"user_cache", cfg.Cache.RedisURL != "",
		"metrics", cfg.Metrics.Enabled)
}
