package bookingflow

import (
	"fmt"
	"strings"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/pkg/locale"
)

type NoticeKind string

const (
	NoticeSelectService      NoticeKind = "select_service"
	NoticeIncompleteData     NoticeKind = "incomplete_data"
	NoticeInvalidEmail       NoticeKind = "invalid_email"
	NoticeDateInvalid        NoticeKind = "date_invalid"
	NoticeDayUnavailable     NoticeKind = "day_unavailable"
	NoticeDateOutOfRange     NoticeKind = "date_out_of_range"
	NoticeAvailabilityFailed NoticeKind = "availability_failed"
	NoticeSubmitFailed       NoticeKind = "submit_failed"
	NoticeConfirmed          NoticeKind = "confirmed"
)

type NoticeLevel string

const (
	LevelSuccess NoticeLevel = "success"
	LevelError   NoticeLevel = "error"
)

// Notice is the message shown to the customer after an operation.
type Notice struct {
	Kind  NoticeKind
	Level NoticeLevel
	Title string
	Text  string
}

const genericSubmitError = "Hubo un problema al procesar tu reserva. Por favor intenta nuevamente."

func errorNotice(kind NoticeKind, title, text string) *Notice {
	return &Notice{Kind: kind, Level: LevelError, Title: title, Text: text}
}

// validationNotice maps a booking validation error to its customer message.
func validationNotice(err error, cal Calendar) *Notice {
	switch {
	case errs.Is(err, booking.ErrNoServiceSelected):
		return errorNotice(NoticeSelectService, "Selecciona un servicio",
			"Por favor selecciona al menos un servicio para continuar con la reserva.")
	case errs.Is(err, booking.ErrIncompleteData):
		return errorNotice(NoticeIncompleteData, "Datos incompletos",
			"Por favor completa todos los campos requeridos (*) y selecciona un horario.")
	case errs.Is(err, booking.ErrInvalidEmail):
		return errorNotice(NoticeInvalidEmail, "Email inválido", "Por favor ingresa un email válido.")
	case errs.Is(err, booking.ErrDateInPast):
		return errorNotice(NoticeDateInvalid, "Fecha inválida",
			"No puedes seleccionar una fecha que ya pasó. Por favor elige una fecha desde hoy en adelante.")
	case errs.Is(err, booking.ErrDayUnavailable):
		return errorNotice(NoticeDayUnavailable, "Día no disponible",
			fmt.Sprintf("Los %s no hay atención. Por favor selecciona otro día.", locale.WeekdayPlural(cal.Window.Closed)))
	case errs.Is(err, booking.ErrDateOutOfRange):
		_, last := cal.Bounds()
		return errorNotice(NoticeDateOutOfRange, "Fecha fuera de rango",
			fmt.Sprintf("Solo se pueden reservar citas hasta el %s.", locale.LongDate(last)))
	default:
		return errorNotice(NoticeDateInvalid, "Fecha inválida", "La fecha ingresada no es válida.")
	}
}

func availabilityFailedNotice() *Notice {
	return errorNotice(NoticeAvailabilityFailed, "Error",
		"No se pudieron cargar los horarios disponibles. Intenta nuevamente.")
}

func submitFailedNotice(serverMessage string) *Notice {
	text := serverMessage
	if text == "" {
		text = genericSubmitError
	}
	return errorNotice(NoticeSubmitFailed, "Error al reservar", text)
}

func confirmedNotice(d booking.ReservationDraft, subtotalLabel string) *Notice {
	return &Notice{
		Kind:  NoticeConfirmed,
		Level: LevelSuccess,
		Title: "¡Reserva confirmada! 🎉",
		Text: fmt.Sprintf(
			"Tu cita ha sido agendada para el %s a las %s. Servicios: %s. Total: %s. Te hemos enviado un email de confirmación a %s.",
			locale.LongDate(d.Date), d.Slot, strings.Join(d.ServiceNames(), ", "), subtotalLabel, d.Email,
		),
	}
}

func validationKind(n *Notice) string {
	if n == nil {
		return ""
	}
	return string(n.Kind)
}
