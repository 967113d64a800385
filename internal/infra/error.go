package infra

import (
	"errors"
	"log/slog"

	"agenda-web/internal/pkg/errs"
)

type BackendErrorKind string

// BackendError is returned by every call to the agenda backend that did not succeed.
// Message is the text the backend put in its error body, if any.
type BackendError struct {
	Kind    BackendErrorKind
	Status  int
	Message string
	msg     string
	err     error // wrapped low-level error
}

func (e BackendError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e BackendError) Unwrap() error {
	return e.err
}

// UserMessage is the backend-provided text, safe to show to the customer.
func (e BackendError) UserMessage() string {
	return e.Message
}

// WrapBackendErr logs the failure and returns a BackendError marked with the shared
// sentinel for its kind, so callers can match it with errs.Is. A non-empty message is
// also attached as a user hint.
func WrapBackendErr(slogger *slog.Logger, kind BackendErrorKind, status int, message, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	slogger.Warn("Backend error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	var out error = BackendError{Kind: kind, Status: status, Message: message, msg: msg, err: err}
	out = errs.Mark(out, kind.sentinel())
	return errs.WithHint(out, message)
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusOf returns the backend HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e BackendError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Backend error kinds
const (
	KindUnavailable  BackendErrorKind = "UNAVAILABLE"
	KindRejected     BackendErrorKind = "REJECTED"
	KindUnauthorized BackendErrorKind = "UNAUTHORIZED"
	KindNotFound     BackendErrorKind = "NOT_FOUND"
	KindMalformed    BackendErrorKind = "MALFORMED"
)

func (k BackendErrorKind) sentinel() error {
	switch k {
	case KindUnavailable:
		return errs.ErrBackendUnavailable
	case KindMalformed:
		return errs.ErrMalformedResponse
	case KindUnauthorized:
		return errs.ErrUnauthorized
	case KindNotFound:
		return errs.ErrNotFound
	default:
		return errs.ErrBackendRejected
	}
}
