package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/usecase/bookingflow"
)

type availabilityResponse struct {
	Disponibles []string `json:"disponibles"`
	Ocupadas    []string `json:"ocupadas"`
	Mensaje     string   `json:"mensaje"`
}

type serviceJSON struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Precio      int64  `json:"precio"`
	Duracion    int    `json:"duracion"`
	Descripcion string `json:"descripcion"`
}

type reservationRequest struct {
	Nombre    string        `json:"nombre"`
	Email     string        `json:"email"`
	Telefono  string        `json:"telefono"`
	Servicios []serviceJSON `json:"servicios"`
	Fecha     string        `json:"fecha"`
	Hora      string        `json:"hora"`
	Subtotal  int64         `json:"subtotal"`
}

// Availability implements bookingflow.AvailabilityService.
func (c *Client) Availability(ctx context.Context, date time.Time) (*bookingflow.AvailabilityResult, error) {
	var res availabilityResponse
	err := c.do(ctx, request{
		operation: "availability",
		method:    http.MethodGet,
		path:      "/appointments/available",
		query:     url.Values{"fecha": {booking.FormatDate(date)}},
	}, &res)
	if err != nil {
		return nil, err
	}

	if res.Mensaje != "" {
		return &bookingflow.AvailabilityResult{ClosedMessage: res.Mensaje}, nil
	}
	return &bookingflow.AvailabilityResult{
		Available: res.Disponibles,
		Occupied:  res.Ocupadas,
	}, nil
}

// SubmitReservation implements bookingflow.ReservationSubmitter.
func (c *Client) SubmitReservation(ctx context.Context, draft booking.ReservationDraft) (*bookingflow.SubmissionReceipt, error) {
	body := reservationRequest{
		Nombre:    draft.Name,
		Email:     draft.Email,
		Telefono:  draft.Phone,
		Servicios: make([]serviceJSON, len(draft.Services)),
		Fecha:     booking.FormatDate(draft.Date),
		Hora:      draft.Slot,
		Subtotal:  draft.Subtotal,
	}
	for i, s := range draft.Services {
		body.Servicios[i] = serviceJSON{
			ID:          s.ID,
			Nombre:      s.Name,
			Precio:      s.Price,
			Duracion:    s.DurationMin,
			Descripcion: s.Description,
		}
	}

	fields := map[string]any{}
	err := c.do(ctx, request{
		operation: "submit_reservation",
		method:    http.MethodPost,
		path:      "/appointments",
		body:      body,
	}, &fields)
	if err != nil {
		return nil, err
	}

	c.logger.Info("reservation created", "date", body.Fecha, "slot", body.Hora)
	return &bookingflow.SubmissionReceipt{Fields: fields}, nil
}
