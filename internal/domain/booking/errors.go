package booking

import (
	"agenda-web/internal/pkg/errs"
)

// Validation sentinels. They are returned wrapped with errs.Invalid so callers can
// match either the specific sentinel or errs.ErrValidation.
var (
	ErrNoServiceSelected = errs.New("no service selected")
	ErrIncompleteData    = errs.New("incomplete reservation data")
	ErrInvalidEmail      = errs.New("invalid email")

	ErrInvalidDate       = errs.New("invalid date")
	ErrDateInPast        = errs.New("date is in the past")
	ErrDayUnavailable    = errs.New("day is not a working day")
	ErrDateOutOfRange    = errs.New("date is beyond the booking horizon")
	ErrInvalidSlotFormat = errs.New("invalid time of day")
)
