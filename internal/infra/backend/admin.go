package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"agenda-web/internal/infra"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/usecase/admin"
)

type adminJSON struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

func (a adminJSON) profile() admin.Profile {
	return admin.Profile{ID: a.ID, Name: a.Nombre, Email: a.Email}
}

type appointmentJSON struct {
	CitaID          int64  `json:"cita_id"`
	Fecha           string `json:"fecha"`
	Hora            string `json:"hora"`
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteEmail    string `json:"cliente_email"`
	ClienteTelefono string `json:"cliente_telefono"`
	Servicio        string `json:"servicio"`
	Estado          string `json:"estado"`
}

var appointmentPaths = map[admin.Tab]string{
	admin.TabToday:    "/admin/appointments/today",
	admin.TabUpcoming: "/admin/appointments/upcoming",
	admin.TabAll:      "/admin/appointments",
}

func (c *Client) Login(ctx context.Context, email, password string) (*admin.Session, error) {
	var res struct {
		Token string    `json:"token"`
		Admin adminJSON `json:"admin"`
	}
	err := c.do(ctx, request{
		operation: "admin_login",
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      map[string]string{"email": email, "password": password},
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, infra.WrapBackendErr(c.logger, infra.KindMalformed, http.StatusOK, "", "admin_login returned no token", nil)
	}
	return &admin.Session{Token: res.Token, Admin: res.Admin.profile()}, nil
}

func (c *Client) Verify(ctx context.Context, token string) (*admin.Profile, error) {
	var res struct {
		Admin adminJSON `json:"admin"`
	}
	err := c.do(ctx, request{
		operation: "admin_verify",
		method:    http.MethodGet,
		path:      "/auth/verify",
		token:     token,
	}, &res)
	if err != nil {
		return nil, err
	}
	p := res.Admin.profile()
	return &p, nil
}

func (c *Client) Stats(ctx context.Context, token string) (*admin.Stats, error) {
	var res struct {
		Estadisticas struct {
			TotalCitas    int `json:"total_citas"`
			CitasHoy      int `json:"citas_hoy"`
			CitasSemana   int `json:"citas_semana"`
			TotalClientes int `json:"total_clientes"`
		} `json:"estadisticas"`
	}
	err := c.do(ctx, request{
		operation: "admin_stats",
		method:    http.MethodGet,
		path:      "/admin/stats",
		token:     token,
	}, &res)
	if err != nil {
		return nil, err
	}
	e := res.Estadisticas
	return &admin.Stats{
		TotalAppointments: e.TotalCitas,
		Today:             e.CitasHoy,
		ThisWeek:          e.CitasSemana,
		TotalClients:      e.TotalClientes,
	}, nil
}

func (c *Client) ListAppointments(ctx context.Context, token string, tab admin.Tab, filter admin.Filter) ([]admin.Appointment, error) {
	path, ok := appointmentPaths[tab]
	if !ok {
		return nil, errs.Invalid(errs.Wrapf(admin.ErrInvalidTab, "tab %q", tab))
	}

	query := url.Values{}
	if tab == admin.TabAll {
		if filter.From != "" {
			query.Set("fecha_inicio", filter.From)
		}
		if filter.To != "" {
			query.Set("fecha_fin", filter.To)
		}
		if filter.Status != "" {
			query.Set("estado", string(filter.Status))
		}
	}

	var res struct {
		Citas []appointmentJSON `json:"citas"`
	}
	err := c.do(ctx, request{
		operation: "admin_appointments",
		method:    http.MethodGet,
		path:      path,
		query:     query,
		token:     token,
	}, &res)
	if err != nil {
		return nil, err
	}

	out := make([]admin.Appointment, len(res.Citas))
	for i, a := range res.Citas {
		out[i] = admin.Appointment{
			ID:          a.CitaID,
			Date:        a.Fecha,
			Time:        a.Hora,
			ClientName:  a.ClienteNombre,
			ClientEmail: a.ClienteEmail,
			ClientPhone: a.ClienteTelefono,
			Service:     a.Servicio,
			Status:      admin.Status(a.Estado),
		}
	}
	return out, nil
}

func (c *Client) ChangeStatus(ctx context.Context, token string, id int64, status admin.Status) error {
	return c.do(ctx, request{
		operation: "admin_change_status",
		method:    http.MethodPatch,
		path:      "/admin/appointments/" + strconv.FormatInt(id, 10) + "/status",
		token:     token,
		body:      map[string]string{"estado": string(status)},
	}, nil)
}

func (c *Client) DeleteAppointment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{
		operation: "admin_delete_appointment",
		method:    http.MethodDelete,
		path:      "/admin/appointments/" + strconv.FormatInt(id, 10),
		token:     token,
	}, nil)
}

func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	return c.do(ctx, request{
		operation: "admin_change_password",
		method:    http.MethodPost,
		path:      "/auth/change-password",
		token:     token,
		body:      map[string]string{"currentPassword": current, "newPassword": next},
	}, nil)
}
