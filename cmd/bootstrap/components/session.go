package components

import (
	"log/slog"

	"agenda-web/internal/handler/middleware"
	"agenda-web/internal/infra/metrics"
	"agenda-web/internal/infra/session"
	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/config"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(middleware.SessionStore)),
		),
	),
)

// NewSessionStore ties the idle sweeper to the app lifecycle.
func NewSessionStore(
	lc fx.Lifecycle,
	factory session.ControllerFactory,
	c clock.Clock,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) *session.Store {
	store := session.NewStore(factory, c, cfg.Session, m.SessionGauge(), logger)
	lc.Append(fx.Hook{
		OnStart: store.Start,
		OnStop:  store.Stop,
	})
	return store
}
