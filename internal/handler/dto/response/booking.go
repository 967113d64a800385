package response

import (
	"agenda-web/internal/domain/booking"
	"agenda-web/internal/usecase/bookingflow"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min"`
	Price       int64  `json:"price"`
	PriceLabel  string `json:"price_label"`
	Selected    bool   `json:"selected"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

type NoticeResponse struct {
	Kind  string `json:"kind"`
	Level string `json:"level"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type BookingResponse struct {
	SessionID     string                `json:"session_id,omitempty" copier:"-"`
	Services      []ServiceResponse     `json:"services"`
	Selected      []ServiceResponse     `json:"selected"`
	Subtotal      int64                 `json:"subtotal"`
	SubtotalLabel string                `json:"subtotal_label"`
	Date          string                `json:"date,omitempty"`
	DateLabel     string                `json:"date_label,omitempty"`
	MinDate       string                `json:"min_date"`
	MaxDate       string                `json:"max_date"`
	Grid          bookingflow.GridState `json:"grid"`
	GridMessage   string                `json:"grid_message,omitempty"`
	Slots         []SlotResponse        `json:"slots"`
	Slot          string                `json:"slot,omitempty"`
	Submitting    bool                  `json:"submitting"`
	Notice        *NoticeResponse       `json:"notice,omitempty" copier:"-"`
}

func FromSnapshot(sessionID string, snap bookingflow.Snapshot) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, &snap); err != nil {
		return nil, err
	}
	res.SessionID = sessionID
	res.Notice = FromNotice(snap.Notice)

	// empty lists render as [] for the page script
	if res.Services == nil {
		res.Services = []ServiceResponse{}
	}
	if res.Selected == nil {
		res.Selected = []ServiceResponse{}
	}
	if res.Slots == nil {
		res.Slots = []SlotResponse{}
	}
	return res, nil
}

func FromNotice(n *bookingflow.Notice) *NoticeResponse {
	if n == nil {
		return nil
	}
	return &NoticeResponse{
		Kind:  string(n.Kind),
		Level: string(n.Level),
		Title: n.Title,
		Text:  n.Text,
	}
}

type ReservationResponse struct {
	Date          string   `json:"date"`
	DateLabel     string   `json:"date_label"`
	Slot          string   `json:"slot"`
	Services      []string `json:"services"`
	Subtotal      int64    `json:"subtotal"`
	SubtotalLabel string   `json:"subtotal_label"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
}

type ConfirmationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Notice      *NoticeResponse     `json:"notice"`
	Receipt     map[string]any      `json:"receipt,omitempty"`
	Booking     *BookingResponse    `json:"booking"`
}

func FromConfirmation(conf *bookingflow.Confirmation, dateLabel, subtotalLabel string, snap *BookingResponse) *ConfirmationResponse {
	d := conf.Draft
	res := &ConfirmationResponse{
		Reservation: ReservationResponse{
			Date:          booking.FormatDate(d.Date),
			DateLabel:     dateLabel,
			Slot:          d.Slot,
			Services:      d.ServiceNames(),
			Subtotal:      d.Subtotal,
			SubtotalLabel: subtotalLabel,
			Name:          d.Name,
			Email:         d.Email,
			Phone:         d.Phone,
		},
		Notice:  FromNotice(&conf.Notice),
		Booking: snap,
	}
	if conf.Receipt != nil {
		res.Receipt = conf.Receipt.Fields
	}
	return res
}
