package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Invalid marks err as a validation failure. Apply it where the error is returned:
// a marked sentinel would compare equal to every other error carrying the same mark.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, ErrValidation)
}

// Is also matches marks set with Mark, which the standard library does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// WithHint attaches a message meant for the end user; retrieve it with UserHint.
func WithHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return cr.WithHint(err, hint)
}

// UserHint returns the first hint attached to err, or "".
func UserHint(err error) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
