package components

import (
	"log/slog"

	"agenda-web/internal/infra/backend"
	"agenda-web/internal/infra/metrics"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/usecase/admin"
	"agenda-web/internal/usecase/bookingflow"
	"agenda-web/internal/usecase/profile"

	"go.uber.org/fx"
)

// BackendModule exposes the single HTTP client under every port it implements.
var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			NewBackendClient,
			fx.As(new(bookingflow.AvailabilityService)),
			fx.As(new(bookingflow.ReservationSubmitter)),
			fx.As(new(admin.Backend)),
			fx.As(new(profile.Source)),
		),
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) *backend.Client {
	return backend.NewClient(
		cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(logger),
		backend.WithObserver(m),
	)
}
