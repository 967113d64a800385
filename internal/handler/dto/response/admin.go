package response

import (
	"agenda-web/internal/pkg/locale"
	"agenda-web/internal/usecase/admin"

	"github.com/jinzhu/copier"
)

type AdminResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

func FromSession(s *admin.Session) *LoginResponse {
	return &LoginResponse{Token: s.Token, Admin: FromProfile(&s.Admin)}
}

func FromProfile(p *admin.Profile) AdminResponse {
	return AdminResponse{ID: p.ID, Name: p.Name, Email: p.Email}
}

type StatsResponse struct {
	TotalAppointments int `json:"total_citas"`
	Today             int `json:"citas_hoy"`
	ThisWeek          int `json:"citas_semana"`
	TotalClients      int `json:"total_clientes"`
}

func FromStats(s *admin.Stats) (*StatsResponse, error) {
	res := &StatsResponse{}
	if err := copier.Copy(res, s); err != nil {
		return nil, err
	}
	return res, nil
}

type AppointmentResponse struct {
	ID          int64        `json:"id"`
	Date        string       `json:"fecha"`
	DateLabel   string       `json:"fecha_label" copier:"-"`
	Time        string       `json:"hora"`
	ClientName  string       `json:"cliente_nombre"`
	ClientEmail string       `json:"cliente_email"`
	ClientPhone string       `json:"cliente_telefono"`
	Service     string       `json:"servicio"`
	Status      admin.Status `json:"estado"`
}

func FromAppointments(items []admin.Appointment) ([]AppointmentResponse, error) {
	res := make([]AppointmentResponse, 0, len(items))
	if len(items) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	for i := range res {
		res[i].DateLabel = locale.ShortDate(res[i].Date)
		res[i].Time = locale.ClockTime(res[i].Time)
	}
	return res, nil
}
