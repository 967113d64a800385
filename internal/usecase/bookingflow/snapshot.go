package bookingflow

import (
	"agenda-web/internal/domain/booking"
	"agenda-web/internal/pkg/locale"
)

type ServiceLine struct {
	ID          int
	Name        string
	Description string
	DurationMin int
	Price       int64
	PriceLabel  string
	Selected    bool
}

type SlotView struct {
	Time      string
	Available bool
	Selected  bool
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	Services      []ServiceLine
	Selected      []ServiceLine
	Subtotal      int64
	SubtotalLabel string
	Date          string
	DateLabel     string
	MinDate       string
	MaxDate       string
	Grid          GridState
	GridMessage   string
	Slots         []SlotView
	Slot          string
	Submitting    bool
	Notice        *Notice
}

func (c *Controller) Snapshot() Snapshot {
	minDate, maxDate := c.DateBounds()

	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Subtotal:      c.selection.Subtotal(),
		SubtotalLabel: c.formatter.Format(c.selection.Subtotal()),
		MinDate:       minDate,
		MaxDate:       maxDate,
		Grid:          c.grid,
		GridMessage:   c.gridMessage,
		Slot:          c.slot,
		Submitting:    c.submitting,
	}

	for _, opt := range c.catalog.Options() {
		snap.Services = append(snap.Services, ServiceLine{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			DurationMin: opt.DurationMin,
			Price:       opt.Price,
			PriceLabel:  c.formatter.Format(opt.Price),
			Selected:    c.selection.Contains(opt.ID),
		})
	}
	for _, opt := range c.selection.Items() {
		snap.Selected = append(snap.Selected, ServiceLine{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			DurationMin: opt.DurationMin,
			Price:       opt.Price,
			PriceLabel:  c.formatter.Format(opt.Price),
			Selected:    true,
		})
	}

	if !c.date.IsZero() {
		snap.Date = booking.FormatDate(c.date)
		snap.DateLabel = locale.LongDate(c.date)
	}

	if c.grid == GridReady {
		for _, s := range c.slots.Slots() {
			snap.Slots = append(snap.Slots, SlotView{
				Time:      s.Time,
				Available: s.Available,
				Selected:  s.Time == c.slot,
			})
		}
	}

	if c.notice != nil {
		n := *c.notice
		snap.Notice = &n
	}
	return snap
}
