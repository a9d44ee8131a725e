package bootstrap

import (
	"log/slog"

	"anchor-gateway/internal/handler/middleware"
	"anchor-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the request logger once and shares its slog.Logger with
// every component that logs.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
