package booking

import (
	"regexp"
	"strings"
	"time"

	"agenda-web/internal/domain/catalog"
	"agenda-web/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail accepts local@domain.tld shapes: one @, a dot after it, no whitespace.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CustomerForm holds the free-text fields typed by the customer.
type CustomerForm struct {
	Name  string
	Email string
	Phone string
}

func (f CustomerForm) Trimmed() CustomerForm {
	return CustomerForm{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
		Phone: strings.TrimSpace(f.Phone),
	}
}

// ReservationDraft is assembled at submit time and never mutated afterwards.
type ReservationDraft struct {
	Name     string
	Email    string
	Phone    string
	Services []catalog.ServiceOption
	Date     time.Time
	Slot     string
	Subtotal int64
}

// NewReservationDraft runs the submit validation pipeline and stops at the first failure:
// empty selection, then missing fields, then email shape.
func NewReservationDraft(sel *SelectionSet, form CustomerForm, date time.Time, slot string) (ReservationDraft, error) {
	if sel == nil || sel.IsEmpty() {
		return ReservationDraft{}, errs.Invalid(ErrNoServiceSelected)
	}

	form = form.Trimmed()
	if form.Name == "" || form.Email == "" || date.IsZero() || slot == "" {
		return ReservationDraft{}, errs.Invalid(ErrIncompleteData)
	}

	if !ValidEmail(form.Email) {
		return ReservationDraft{}, errs.Invalid(ErrInvalidEmail)
	}

	return ReservationDraft{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Services: sel.Items(),
		Date:     date,
		Slot:     slot,
		Subtotal: sel.Subtotal(),
	}, nil
}

func (d ReservationDraft) ServiceNames() []string {
	names := make([]string, len(d.Services))
	for i, s := range d.Services {
		names[i] = s.Name
	}
	return names
}
