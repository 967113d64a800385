package booking

import (
	"time"

	"agenda-web/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// DateWindow bounds selectable dates to [today, today+HorizonDays] minus one closed weekday.
type DateWindow struct {
	HorizonDays int
	Closed      time.Weekday
}

func DefaultDateWindow() DateWindow {
	return DateWindow{HorizonDays: 60, Closed: time.Sunday}
}

// ParseDate reads a YYYY-MM-DD value as midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, errs.Invalid(errs.Wrapf(ErrInvalidDate, "parse %q", raw))
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// Check validates candidate against today (midnight, same location).
// Checks run in order: lower bound, closed weekday, upper bound.
func (w DateWindow) Check(candidate, today time.Time) error {
	if candidate.Before(today) {
		return errs.Invalid(ErrDateInPast)
	}
	if candidate.Weekday() == w.Closed {
		return errs.Invalid(ErrDayUnavailable)
	}
	_, last := w.Bounds(today)
	if candidate.After(last) {
		return errs.Invalid(ErrDateOutOfRange)
	}
	return nil
}

// Bounds returns the inclusive min and max dates offered to the date picker.
func (w DateWindow) Bounds(today time.Time) (time.Time, time.Time) {
	return today, today.AddDate(0, 0, w.HorizonDays)
}
