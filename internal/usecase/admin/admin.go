//go:generate mockgen -source=admin.go -destination=../../../tests/mock/admin/admin.go -package=adminmock

package admin

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"agenda-web/internal/pkg/errs"
)

const minPasswordLength = 6

var (
	ErrMissingCredentials = errs.WithHint(
		errs.New("email and password are required"),
		"Por favor ingresa tu email y contraseña")
	ErrMissingPassword = errs.WithHint(
		errs.New("current and new password are required"),
		"Por favor ingresa tu contraseña actual y la nueva contraseña")
	ErrPasswordMismatch = errs.WithHint(
		errs.New("password confirmation does not match"),
		"Las contraseñas no coinciden")
	ErrPasswordTooShort = errs.WithHint(
		errs.New("password too short"),
		"La contraseña debe tener al menos 6 caracteres")
	ErrInvalidStatus = errs.WithHint(
		errs.New("invalid appointment status"),
		"Estado inválido")
	ErrInvalidTab = errs.WithHint(
		errs.New("invalid appointment tab"),
		"Pestaña inválida")
	ErrInvalidFilter = errs.WithHint(
		errs.New("invalid appointment filter"),
		"Filtro inválido")
	ErrInvalidAppointmentID = errs.WithHint(
		errs.New("invalid appointment id"),
		"Cita inválida")
)

type Tab string

const (
	TabToday    Tab = "hoy"
	TabUpcoming Tab = "futuras"
	TabAll      Tab = "todas"
)

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
)

type Profile struct {
	ID    int64
	Name  string
	Email string
}

type Session struct {
	Token string
	Admin Profile
}

type Stats struct {
	TotalAppointments int
	Today             int
	ThisWeek          int
	TotalClients      int
}

// Filter only applies to TabAll. Dates are YYYY-MM-DD; empty fields are not sent.
type Filter struct {
	From   string
	To     string
	Status Status
}

type Appointment struct {
	ID          int64
	Date        string
	Time        string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Service     string
	Status      Status
}

// Backend is the admin side of the agenda backend. Every call except Login carries the
// bearer token.
type Backend interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Verify(ctx context.Context, token string) (*Profile, error)
	Stats(ctx context.Context, token string) (*Stats, error)
	ListAppointments(ctx context.Context, token string, tab Tab, filter Filter) ([]Appointment, error)
	ChangeStatus(ctx context.Context, token string, id int64, status Status) error
	DeleteAppointment(ctx context.Context, token string, id int64) error
	ChangePassword(ctx context.Context, token, current, next string) error
}

type UseCase interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Verify(ctx context.Context, token string) (*Profile, error)
	Stats(ctx context.Context, token string) (*Stats, error)
	ListAppointments(ctx context.Context, token string, tab Tab, filter Filter) ([]Appointment, error)
	ChangeStatus(ctx context.Context, token string, id int64, status Status) error
	DeleteAppointment(ctx context.Context, token string, id int64) error
	ChangePassword(ctx context.Context, token, current, next, confirm string) error
}

type useCaseImpl struct {
	backend Backend
	logger  *slog.Logger
}

func NewUseCase(backend Backend, logger *slog.Logger) UseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &useCaseImpl{backend: backend, logger: logger.With("component", "admin")}
}

func (u *useCaseImpl) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errs.Invalid(ErrMissingCredentials)
	}

	session, err := u.backend.Login(ctx, email, password)
	if err != nil {
		return nil, errs.Wrap(err, "admin login")
	}
	u.logger.Info("admin logged in", "admin_id", session.Admin.ID)
	return session, nil
}

func (u *useCaseImpl) Verify(ctx context.Context, token string) (*Profile, error) {
	profile, err := u.backend.Verify(ctx, token)
	if err != nil {
		return nil, errs.Wrap(err, "verify admin token")
	}
	return profile, nil
}

func (u *useCaseImpl) Stats(ctx context.Context, token string) (*Stats, error) {
	stats, err := u.backend.Stats(ctx, token)
	if err != nil {
		return nil, errs.Wrap(err, "load admin stats")
	}
	return stats, nil
}

func (u *useCaseImpl) ListAppointments(ctx context.Context, token string, tab Tab, filter Filter) ([]Appointment, error) {
	if tab == "" {
		tab = TabAll
	}
	switch tab {
	case TabToday, TabUpcoming:
		filter = Filter{}
	case TabAll:
		if err := filter.Validate(); err != nil {
			return nil, err
		}
	default:
		return nil, errs.Invalid(errs.Wrapf(ErrInvalidTab, "tab %q", tab))
	}

	items, err := u.backend.ListAppointments(ctx, token, tab, filter)
	if err != nil {
		return nil, errs.Wrapf(err, "list %s appointments", tab)
	}
	return items, nil
}

func (u *useCaseImpl) ChangeStatus(ctx context.Context, token string, id int64, status Status) error {
	if id <= 0 {
		return errs.Invalid(ErrInvalidAppointmentID)
	}
	if status != StatusConfirmed && status != StatusCancelled {
		return errs.Invalid(errs.Wrapf(ErrInvalidStatus, "status %q", status))
	}

	if err := u.backend.ChangeStatus(ctx, token, id, status); err != nil {
		return errs.Wrapf(err, "change appointment %d status", id)
	}
	u.logger.Info("appointment status changed", "appointment_id", id, "status", string(status))
	return nil
}

func (u *useCaseImpl) DeleteAppointment(ctx context.Context, token string, id int64) error {
	if id <= 0 {
		return errs.Invalid(ErrInvalidAppointmentID)
	}
	if err := u.backend.DeleteAppointment(ctx, token, id); err != nil {
		return errs.Wrapf(err, "delete appointment %d", id)
	}
	u.logger.Info("appointment deleted", "appointment_id", id)
	return nil
}

func (u *useCaseImpl) ChangePassword(ctx context.Context, token, current, next, confirm string) error {
	if current == "" || next == "" {
		return errs.Invalid(ErrMissingPassword)
	}
	if next != confirm {
		return errs.Invalid(ErrPasswordMismatch)
	}
	if utf8.RuneCountInString(next) < minPasswordLength {
		return errs.Invalid(ErrPasswordTooShort)
	}

	if err := u.backend.ChangePassword(ctx, token, current, next); err != nil {
		return errs.Wrap(err, "change admin password")
	}
	u.logger.Info("admin password changed")
	return nil
}

func (f Filter) Validate() error {
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return errs.Invalid(errs.Wrapf(ErrInvalidFilter, "date %q", d))
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return errs.Invalid(errs.Wrapf(ErrInvalidFilter, "range %s..%s", f.From, f.To))
	}
	switch f.Status {
	case "", StatusPending, StatusConfirmed, StatusCancelled:
		return nil
	default:
		return errs.Invalid(errs.Wrapf(ErrInvalidFilter, "status %q", f.Status))
	}
}
