package bootstrap

import (
	"log/slog"

	"agenda-web/internal/handler/middleware"
	"agenda-web/internal/infra/metrics"
	"agenda-web/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// NewLogger also becomes the process-wide slog default.
func NewLogger(cfg config.Config, m *metrics.Metrics) *middleware.Logger {
	return middleware.NewLogger(cfg.Log).WithObserver(m)
}
