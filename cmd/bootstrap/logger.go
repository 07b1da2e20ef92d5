package bootstrap

import (
	"log/slog"

	"seat-reservation/internal/handler/middleware"
	"seat-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process logger from LOG_* settings so that HTTP
// access logs and background jobs share one handler.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
