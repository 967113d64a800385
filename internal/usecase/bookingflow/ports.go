//go:generate mockgen -source=ports.go -destination=../../../tests/mock/bookingflow/ports.go -package=bookingflowmock

package bookingflow

import (
	"context"
	"time"

	"agenda-web/internal/domain/booking"
)

// AvailabilityResult is the backend answer for one date. ClosedMessage is set when the
// whole day is closed; the lists are empty in that case.
type AvailabilityResult struct {
	Available     []string
	Occupied      []string
	ClosedMessage string
}

type AvailabilityService interface {
	Availability(ctx context.Context, date time.Time) (*AvailabilityResult, error)
}

// SubmissionReceipt carries whatever confirmation fields the backend returned.
type SubmissionReceipt struct {
	Fields map[string]any
}

type ReservationSubmitter interface {
	SubmitReservation(ctx context.Context, draft booking.ReservationDraft) (*SubmissionReceipt, error)
}

// Recorder receives flow events for metrics. Outcome labels are fixed strings.
type Recorder interface {
	AvailabilityResolved(outcome string)
	StaleAvailabilityDiscarded()
	SubmissionFinished(outcome string)
	ValidationRejected(kind string)
}

type noopRecorder struct{}

func (noopRecorder) AvailabilityResolved(string) {}
func (noopRecorder) StaleAvailabilityDiscarded() {}
func (noopRecorder) SubmissionFinished(string)   {}
func (noopRecorder) ValidationRejected(string)   {}
