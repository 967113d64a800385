package bookingflow

import (
	"log/slog"

	"agenda-web/internal/domain/catalog"
	"agenda-web/internal/pkg/money"
)

// ControllerFactory builds one Controller per booking session, all sharing the same
// backend ports and settings.
type ControllerFactory struct {
	catalog      *catalog.Catalog
	calendar     Calendar
	availability AvailabilityService
	submitter    ReservationSubmitter
	formatter    money.Formatter
	recorder     Recorder
	logger       *slog.Logger
}

func NewControllerFactory(
	cat *catalog.Catalog,
	cal Calendar,
	availability AvailabilityService,
	submitter ReservationSubmitter,
	formatter money.Formatter,
	recorder Recorder,
	logger *slog.Logger,
) *ControllerFactory {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ControllerFactory{
		catalog:      cat,
		calendar:     cal,
		availability: availability,
		submitter:    submitter,
		formatter:    formatter,
		recorder:     recorder,
		logger:       logger.With("component", "bookingflow"),
	}
}

func (f *ControllerFactory) Catalog() *catalog.Catalog {
	return f.catalog
}

func (f *ControllerFactory) Calendar() Calendar {
	return f.calendar
}

func (f *ControllerFactory) Formatter() money.Formatter {
	return f.formatter
}

func (f *ControllerFactory) New() *Controller {
	return &Controller{
		catalog:      f.catalog,
		calendar:     f.calendar,
		availability: f.availability,
		submitter:    f.submitter,
		formatter:    f.formatter,
		recorder:     f.recorder,
		logger:       f.logger,
		grid:         GridHidden,
	}
}
