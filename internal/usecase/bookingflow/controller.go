package bookingflow

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/domain/catalog"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/pkg/money"
)

var (
	ErrSubmitInProgress = errs.New("reservation submission already in progress")
	ErrSubmissionFailed = errs.New("reservation submission failed")
	ErrSlotNotAvailable = errs.New("time slot is not available")
)

type GridState string

const (
	GridHidden  GridState = "hidden"
	GridLoading GridState = "loading"
	GridReady   GridState = "ready"
	GridEmpty   GridState = "empty"
	GridClosed  GridState = "closed"
	GridFailed  GridState = "failed"
)

const (
	emptyGridMessage  = "No hay horarios disponibles para esta fecha"
	failedGridMessage = "No se pudieron cargar los horarios. Intenta nuevamente."
)

// Controller owns the state of one in-progress reservation.
//
// The mutex is never held across a backend call. Every accepted date bumps
// generation; an availability answer is applied only when both its date and its
// generation still match, so a slow answer for an earlier pick cannot overwrite a
// newer one.
type Controller struct {
	mu sync.Mutex

	catalog      *catalog.Catalog
	calendar     Calendar
	availability AvailabilityService
	submitter    ReservationSubmitter
	formatter    money.Formatter
	recorder     Recorder
	logger       *slog.Logger

	selection   booking.SelectionSet
	date        time.Time
	generation  uint64
	grid        GridState
	gridMessage string
	slots       booking.SlotSet
	slot        string
	submitting  bool
	notice      *Notice
}

// Confirmation is returned by a successful Submit.
type Confirmation struct {
	Draft   booking.ReservationDraft
	Notice  Notice
	Receipt *SubmissionReceipt
}

func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// ToggleService selects opt, or deselects it when its id is already selected.
func (c *Controller) ToggleService(opt catalog.ServiceOption) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notice = nil
	selected := c.selection.Toggle(opt)
	c.logger.Debug("service toggled",
		"service_id", opt.ID,
		"selected", selected,
		"subtotal", c.selection.Subtotal(),
	)
	return selected
}

// ToggleServiceByID resolves id against the session catalog first.
func (c *Controller) ToggleServiceByID(id int) (bool, error) {
	opt, err := c.catalog.Lookup(id)
	if err != nil {
		return false, err
	}
	return c.ToggleService(opt), nil
}

func (c *Controller) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Subtotal()
}

// SetDate validates raw (YYYY-MM-DD) and, when accepted, clears the slot selection and
// grid and starts fetching availability. The returned channel is closed once that fetch
// has resolved, whether its answer was applied or discarded. Empty raw clears the date.
func (c *Controller) SetDate(ctx context.Context, raw string) (<-chan struct{}, error) {
	raw = strings.TrimSpace(raw)

	c.mu.Lock()
	c.notice = nil

	if raw == "" {
		c.clearDateLocked()
		c.mu.Unlock()
		return nil, nil
	}

	date, err := c.calendar.Validate(raw)
	if err != nil {
		c.clearDateLocked()
		c.notice = validationNotice(err, c.calendar)
		kind := validationKind(c.notice)
		c.mu.Unlock()

		c.recorder.ValidationRejected(kind)
		c.logger.Info("date rejected", "date", raw, "reason", kind)
		return nil, err
	}

	c.date = date
	c.slot = ""
	c.slots = booking.SlotSet{}
	c.grid = GridLoading
	c.gridMessage = ""
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	done := make(chan struct{})
	// the fetch outlives the request that triggered it
	loadCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(done)
		c.loadAvailability(loadCtx, date, gen)
	}()
	return done, nil
}

// LoadAvailability fetches slots for date and blocks until the answer is applied or
// discarded. Reloading the current date restarts its grid.
func (c *Controller) LoadAvailability(ctx context.Context, date time.Time) {
	c.mu.Lock()
	if !c.date.IsZero() && c.date.Equal(date) {
		c.generation++
		c.slot = ""
		c.slots = booking.SlotSet{}
		c.grid = GridLoading
		c.gridMessage = ""
		c.notice = nil
	}
	gen := c.generation
	c.mu.Unlock()

	c.loadAvailability(ctx, date, gen)
}

func (c *Controller) loadAvailability(ctx context.Context, date time.Time, gen uint64) {
	day := booking.FormatDate(date)
	res, err := c.availability.Availability(ctx, date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || !c.date.Equal(date) {
		c.recorder.StaleAvailabilityDiscarded()
		c.logger.Debug("stale availability discarded", "date", day)
		return
	}

	if err != nil {
		c.failGridLocked(day, err)
		return
	}
	if res == nil {
		c.failGridLocked(day, errs.Wrap(errs.ErrMalformedResponse, "empty availability answer"))
		return
	}

	if res.ClosedMessage != "" {
		c.grid = GridClosed
		c.gridMessage = res.ClosedMessage
		c.recorder.AvailabilityResolved(string(GridClosed))
		c.logger.Info("day closed", "date", day, "message", res.ClosedMessage)
		return
	}

	set, err := booking.NewSlotSet(res.Available, res.Occupied)
	if err != nil {
		c.failGridLocked(day, err)
		return
	}

	c.slots = set
	if set.IsEmpty() {
		c.grid = GridEmpty
		c.gridMessage = emptyGridMessage
	} else {
		c.grid = GridReady
	}
	c.recorder.AvailabilityResolved(string(c.grid))
	c.logger.Info("availability loaded",
		"date", day,
		"available", set.AvailableCount(),
		"occupied", set.OccupiedCount(),
	)
}

func (c *Controller) failGridLocked(day string, err error) {
	c.grid = GridFailed
	c.gridMessage = failedGridMessage
	c.slots = booking.SlotSet{}
	c.slot = ""
	c.notice = availabilityFailedNotice()
	c.recorder.AvailabilityResolved(string(GridFailed))
	c.logger.Warn("availability fetch failed", "date", day, "error", err.Error())
}

// SelectSlot replaces the current slot selection. Only available slots of the grid
// currently shown can be picked.
func (c *Controller) SelectSlot(raw string) error {
	t, err := booking.NormalizeClock(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.grid != GridReady || !c.slots.IsAvailable(t) {
		return errs.Invalid(errs.Wrapf(ErrSlotNotAvailable, "slot %s", t))
	}
	c.notice = nil
	c.slot = t
	return nil
}

// Submit validates the current state plus form and sends the reservation. On success
// the whole flow is reset; on failure the state is kept so the customer can retry.
// Only one submission may be in flight at a time.
func (c *Controller) Submit(ctx context.Context, form booking.CustomerForm) (*Confirmation, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	c.notice = nil
	draft, err := booking.NewReservationDraft(&c.selection, form, c.date, c.slot)
	if err != nil {
		c.notice = validationNotice(err, c.calendar)
		kind := validationKind(c.notice)
		c.mu.Unlock()

		c.recorder.ValidationRejected(kind)
		c.logger.Info("submission rejected", "reason", kind)
		return nil, err
	}

	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	c.logger.Info("submitting reservation",
		"date", booking.FormatDate(draft.Date),
		"slot", draft.Slot,
		"services", len(draft.Services),
		"subtotal", draft.Subtotal,
	)
	receipt, err := c.submitter.SubmitReservation(ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.notice = submitFailedNotice(errs.UserHint(err))
		c.recorder.SubmissionFinished("failed")
		c.logger.Warn("reservation submission failed", "error", err.Error())
		return nil, errs.Mark(errs.Wrap(err, "submit reservation"), ErrSubmissionFailed)
	}

	notice := confirmedNotice(draft, c.formatter.Format(draft.Subtotal))
	c.resetLocked()
	c.notice = notice
	c.recorder.SubmissionFinished("confirmed")
	c.logger.Info("reservation confirmed", "date", booking.FormatDate(draft.Date), "slot", draft.Slot)

	return &Confirmation{Draft: draft, Notice: *notice, Receipt: receipt}, nil
}

// Reset returns the flow to its initial empty state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	c.notice = nil
}

func (c *Controller) resetLocked() {
	c.selection.Reset()
	c.clearDateLocked()
}

func (c *Controller) clearDateLocked() {
	c.date = time.Time{}
	c.slot = ""
	c.slots = booking.SlotSet{}
	c.grid = GridHidden
	c.gridMessage = ""
	c.generation++
}

// Date returns the accepted date, if any.
func (c *Controller) Date() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date, !c.date.IsZero()
}

// DateBounds returns the picker min and max as YYYY-MM-DD.
func (c *Controller) DateBounds() (string, string) {
	first, last := c.calendar.Bounds()
	return booking.FormatDate(first), booking.FormatDate(last)
}
