package bookingflow

import (
	"time"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/pkg/clock"
)

// Calendar resolves "today" in the business timezone and applies the date window.
type Calendar struct {
	Window   booking.DateWindow
	Location *time.Location
	Clock    clock.Clock
}

func NewCalendar(window booking.DateWindow, loc *time.Location, c clock.Clock) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Window: window, Location: loc, Clock: c}
}

func (c Calendar) Today() time.Time {
	return clock.Today(c.Clock, c.Location)
}

func (c Calendar) Bounds() (time.Time, time.Time) {
	return c.Window.Bounds(c.Today())
}

// Validate parses raw and checks it against the window.
func (c Calendar) Validate(raw string) (time.Time, error) {
	d, err := booking.ParseDate(raw, c.Location)
	if err != nil {
		return time.Time{}, err
	}
	if err := c.Window.Check(d, c.Today()); err != nil {
		return time.Time{}, err
	}
	return d, nil
}
