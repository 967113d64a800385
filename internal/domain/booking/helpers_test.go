//go:build unit

package booking_test

import "agenda-web/internal/pkg/errs"

func isValidation(err error) bool {
	return errs.Is(err, errs.ErrValidation)
}
