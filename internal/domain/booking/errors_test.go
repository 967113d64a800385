//go:build unit

package booking_test

import (
	"testing"
	"time"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var validationSentinels = map[string]error{
	"no service":    booking.ErrNoServiceSelected,
	"incomplete":    booking.ErrIncompleteData,
	"invalid email": booking.ErrInvalidEmail,
	"invalid date":  booking.ErrInvalidDate,
	"date in past":  booking.ErrDateInPast,
	"day closed":    booking.ErrDayUnavailable,
	"out of range":  booking.ErrDateOutOfRange,
	"invalid clock": booking.ErrInvalidSlotFormat,
}

func TestValidationSentinelsAreDistinct(t *testing.T) {
	for name, err := range validationSentinels {
		for other, ref := range validationSentinels {
			if name == other {
				continue
			}
			assert.False(t, errs.Is(err, ref), "%s must not match %s", name, other)
			assert.False(t, errs.Is(errs.Invalid(err), ref), "marked %s must not match %s", name, other)
		}
		assert.True(t, errs.Is(errs.Invalid(err), err), name)
		assert.True(t, isValidation(errs.Invalid(err)), name)
	}
}

func TestReturnedErrorsKeepTheirIdentity(t *testing.T) {
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, montevideo)
	window := booking.DefaultDateWindow()

	err := window.Check(today.AddDate(0, 0, -1), today)
	assert.True(t, errs.Is(err, booking.ErrDateInPast))
	assert.False(t, errs.Is(err, booking.ErrNoServiceSelected))
	assert.True(t, isValidation(err))

	// 2026-10-18 is a Sunday
	err = window.Check(time.Date(2026, 10, 18, 0, 0, 0, 0, montevideo), today)
	assert.True(t, errs.Is(err, booking.ErrDayUnavailable))
	assert.False(t, errs.Is(err, booking.ErrInvalidSlotFormat))

	_, err = booking.NewReservationDraft(&booking.SelectionSet{}, booking.CustomerForm{}, today, "10:00")
	assert.True(t, errs.Is(err, booking.ErrNoServiceSelected))
	assert.False(t, errs.Is(err, booking.ErrIncompleteData))
}
