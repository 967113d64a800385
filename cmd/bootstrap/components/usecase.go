package components

import (
	"log/slog"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/domain/catalog"
	"agenda-web/internal/handler/api"
	"agenda-web/internal/infra/metrics"
	"agenda-web/internal/infra/session"
	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/pkg/money"
	"agenda-web/internal/usecase/admin"
	"agenda-web/internal/usecase/bookingflow"
	"agenda-web/internal/usecase/profile"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseBookingModule,
	usecaseAdminModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCatalog,
	NewFormatter,
	NewCalendar,
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		fx.Annotate(
			NewControllerFactory,
			fx.As(new(session.ControllerFactory)),
			fx.As(new(api.BookingSetup)),
		),
	),
)

var usecaseAdminModule = fx.Module("usecase/admin",
	fx.Provide(
		admin.NewUseCase,
		func(cfg config.Config, source profile.Source, c clock.Clock) profile.UseCase {
			return profile.NewUseCase(source, c, cfg.Backend.ProfileTTL)
		},
	),
)

// NewCatalog falls back to the generic catalog for business types it does not know.
func NewCatalog(cfg config.Config) *catalog.Catalog {
	return catalog.New(catalog.BusinessType(cfg.Booking.BusinessType))
}

func NewFormatter(cfg config.Config) money.Formatter {
	return money.Formatter{
		Symbol:           cfg.Currency.Symbol,
		Position:         money.SymbolPosition(cfg.Currency.Position),
		Decimals:         cfg.Currency.Decimals,
		ThousandsSep:     cfg.Currency.ThousandsSep,
		DecimalSeparator: cfg.Currency.DecimalSeparator,
	}
}

func NewCalendar(cfg config.Config, c clock.Clock) (bookingflow.Calendar, error) {
	closed, err := cfg.Booking.Weekday()
	if err != nil {
		return bookingflow.Calendar{}, err
	}
	window := booking.DateWindow{HorizonDays: cfg.Booking.HorizonDays, Closed: closed}
	return bookingflow.NewCalendar(window, cfg.Booking.Location(), c), nil
}

func NewControllerFactory(
	cat *catalog.Catalog,
	cal bookingflow.Calendar,
	availability bookingflow.AvailabilityService,
	submitter bookingflow.ReservationSubmitter,
	formatter money.Formatter,
	m *metrics.Metrics,
	logger *slog.Logger,
) *bookingflow.ControllerFactory {
	return bookingflow.NewControllerFactory(cat, cal, availability, submitter, formatter, m, logger)
}
