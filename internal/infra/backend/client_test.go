//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/domain/catalog"
	"agenda-web/internal/infra"
	"agenda-web/internal/infra/backend"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/usecase/admin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var montevideo = time.FixedZone("UYT", -3*60*60)

type observation struct {
	operation string
	outcome   string
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *fakeObserver) ObserveBackendCall(operation, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{operation, outcome})
}

func newServer(t *testing.T, h http.HandlerFunc) (*backend.Client, *fakeObserver) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	obs := &fakeObserver{}
	return backend.NewClient(srv.URL+"/api/", backend.WithObserver(obs), backend.WithTimeout(time.Second)), obs
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAvailability(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, montevideo)

	t.Run("success: partitions slots", func(t *testing.T) {
		client, obs := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/appointments/available", r.URL.Path)
			assert.Equal(t, "2026-10-20", r.URL.Query().Get("fecha"))
			writeJSON(w, http.StatusOK, map[string]any{
				"disponibles": []string{"09:00", "10:00"},
				"ocupadas":    []string{"11:00"},
			})
		})

		res, err := client.Availability(context.Background(), date)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00"}, res.Available)
		assert.Equal(t, []string{"11:00"}, res.Occupied)
		assert.Empty(t, res.ClosedMessage)
		assert.Equal(t, []observation{{"availability", "ok"}}, obs.seen)
	})

	t.Run("success: closed day sentinel", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"mensaje": "No hay atención este día"})
		})

		res, err := client.Availability(context.Background(), date)
		require.NoError(t, err)
		assert.Equal(t, "No hay atención este día", res.ClosedMessage)
		assert.Empty(t, res.Available)
	})

	t.Run("error: non-success status", func(t *testing.T) {
		client, obs := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "db down"})
		})

		_, err := client.Availability(context.Background(), date)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
		assert.Equal(t, http.StatusInternalServerError, infra.StatusOf(err))
		assert.Equal(t, []observation{{"availability", "5xx"}}, obs.seen)
	})

	t.Run("error: malformed body", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := client.Availability(context.Background(), date)
		assert.True(t, errs.Is(err, errs.ErrMalformedResponse))
	})

	t.Run("error: unreachable backend", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := backend.NewClient(url).Availability(context.Background(), date)
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
		assert.Equal(t, 0, infra.StatusOf(err))
	})
}

func TestSubmitReservation(t *testing.T) {
	draft := booking.ReservationDraft{
		Name:  "Ana",
		Email: "a@b.com",
		Services: []catalog.ServiceOption{
			{ID: 1, Name: "Corte de cabello", Price: 350, DurationMin: 30, Description: "Corte"},
			{ID: 3, Name: "Corte + Barba", Price: 500, DurationMin: 45, Description: "Combo"},
		},
		Date:     time.Date(2026, 10, 20, 0, 0, 0, 0, montevideo),
		Slot:     "14:00",
		Subtotal: 850,
	}

	t.Run("success: sends the draft and returns the receipt", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/appointments", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{
				"nombre": "Ana",
				"email": "a@b.com",
				"telefono": "",
				"servicios": [
					{"id": 1, "nombre": "Corte de cabello", "precio": 350, "duracion": 30, "descripcion": "Corte"},
					{"id": 3, "nombre": "Corte + Barba", "precio": 500, "duracion": 45, "descripcion": "Combo"}
				],
				"fecha": "2026-10-20",
				"hora": "14:00",
				"subtotal": 850
			}`, string(raw))

			writeJSON(w, http.StatusCreated, map[string]any{"cita_id": 42, "mensaje": "Cita creada"})
		})

		receipt, err := client.SubmitReservation(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, float64(42), receipt.Fields["cita_id"])
	})

	t.Run("error: backend message becomes the user hint", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]any{"error": "El horario ya no está disponible"})
		})

		_, err := client.SubmitReservation(context.Background(), draft)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrBackendRejected))
		assert.Equal(t, "El horario ya no está disponible", errs.UserHint(err))
	})

	t.Run("error: no message leaves the hint empty", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		_, err := client.SubmitReservation(context.Background(), draft)
		assert.True(t, errs.Is(err, errs.ErrBackendRejected))
		assert.Empty(t, errs.UserHint(err))
	})
}

func TestBusinessProfile(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"nombre_negocio": "Barbería Centro",
			"email_negocio":  "hola@centro.uy",
			"telefono":       "099000000",
		})
	})

	p, err := client.BusinessProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Barbería Centro", p.Name)
	assert.Equal(t, "hola@centro.uy", p.Email)
	assert.Equal(t, "099000000", p.Extra["telefono"])
}

func TestAdminCalls(t *testing.T) {
	t.Run("success: login returns token and admin", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"email": "laura@example.com", "password": "secret"}, body)
			writeJSON(w, http.StatusOK, map[string]any{
				"token": "tok",
				"admin": map[string]any{"id": 1, "nombre": "Laura", "email": "laura@example.com"},
			})
		})

		s, err := client.Login(context.Background(), "laura@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok", s.Token)
		assert.Equal(t, admin.Profile{ID: 1, Name: "Laura", Email: "laura@example.com"}, s.Admin)
	})

	t.Run("error: wrong credentials", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Credenciales inválidas"})
		})

		_, err := client.Login(context.Background(), "laura@example.com", "nope")
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.Equal(t, "Credenciales inválidas", errs.UserHint(err))
	})

	t.Run("success: list routes by tab and sends filters only for all", func(t *testing.T) {
		var paths, queries []string
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			paths = append(paths, r.URL.Path)
			queries = append(queries, r.URL.RawQuery)
			writeJSON(w, http.StatusOK, map[string]any{"citas": []map[string]any{{
				"cita_id":          7,
				"fecha":            "2026-10-20T00:00:00.000Z",
				"hora":             "14:00:00",
				"cliente_nombre":   "Ana",
				"cliente_email":    "a@b.com",
				"cliente_telefono": nil,
				"servicio":         "Corte + Barba",
				"estado":           "pendiente",
			}}})
		})

		filter := admin.Filter{From: "2026-10-01", Status: admin.StatusPending}
		for _, tab := range []admin.Tab{admin.TabToday, admin.TabUpcoming, admin.TabAll} {
			items, err := client.ListAppointments(context.Background(), "tok", tab, filter)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, admin.Appointment{
				ID:          7,
				Date:        "2026-10-20T00:00:00.000Z",
				Time:        "14:00:00",
				ClientName:  "Ana",
				ClientEmail: "a@b.com",
				Service:     "Corte + Barba",
				Status:      admin.StatusPending,
			}, items[0])
		}

		assert.Equal(t, []string{
			"/api/admin/appointments/today",
			"/api/admin/appointments/upcoming",
			"/api/admin/appointments",
		}, paths)
		assert.Equal(t, []string{"", "", "estado=pendiente&fecha_inicio=2026-10-01"}, queries)
	})

	t.Run("success: status change, deletion and password change", func(t *testing.T) {
		type seenReq struct {
			method, path, body string
		}
		var seen []seenReq
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			seen = append(seen, seenReq{r.Method, r.URL.Path, string(raw)})
			writeJSON(w, http.StatusOK, map[string]any{"mensaje": "ok"})
		})

		require.NoError(t, client.ChangeStatus(context.Background(), "tok", 5, admin.StatusConfirmed))
		require.NoError(t, client.DeleteAppointment(context.Background(), "tok", 5))
		require.NoError(t, client.ChangePassword(context.Background(), "tok", "old", "newpass"))

		require.Len(t, seen, 3)
		assert.Equal(t, http.MethodPatch, seen[0].method)
		assert.Equal(t, "/api/admin/appointments/5/status", seen[0].path)
		assert.JSONEq(t, `{"estado":"confirmada"}`, seen[0].body)
		assert.Equal(t, http.MethodDelete, seen[1].method)
		assert.Equal(t, "/api/admin/appointments/5", seen[1].path)
		assert.Equal(t, "/api/auth/change-password", seen[2].path)
		assert.JSONEq(t, `{"currentPassword":"old","newPassword":"newpass"}`, seen[2].body)
	})

	t.Run("success: stats", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/admin/stats", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{"estadisticas": map[string]any{
				"total_citas": 40, "citas_hoy": 3, "citas_semana": 12, "total_clientes": 25,
			}})
		})

		st, err := client.Stats(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, admin.Stats{TotalAppointments: 40, Today: 3, ThisWeek: 12, TotalClients: 25}, *st)
	})
}
