package request

import (
	"agenda-web/internal/domain/booking"
	"agenda-web/internal/pkg/patch"
)

// SetDateRequest carries the picker value. An empty fecha clears the date.
type SetDateRequest struct {
	Fecha string `json:"fecha"`
}

type SelectSlotRequest struct {
	Hora string `json:"hora" binding:"required"`
}

// SubmitRequest fields are checked by the booking flow, not by binding tags, so the
// customer gets the same notices the form shows.
type SubmitRequest struct {
	Nombre   string  `json:"nombre"`
	Email    string  `json:"email"`
	Telefono *string `json:"telefono"`
}

func (r *SubmitRequest) ToDomain() booking.CustomerForm {
	return booking.CustomerForm{
		Name:  r.Nombre,
		Email: r.Email,
		Phone: patch.OptionalText(r.Telefono),
	}
}
