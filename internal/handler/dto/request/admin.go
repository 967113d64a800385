package request

import (
	"strings"

	"agenda-web/internal/usecase/admin"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangeStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

func (r *ChangeStatusRequest) ToDomain() admin.Status {
	return admin.Status(strings.ToLower(strings.TrimSpace(r.Estado)))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AppointmentListQuery filters only apply to the "todas" tab.
type AppointmentListQuery struct {
	Tab         string `form:"tab"`
	FechaInicio string `form:"fecha_inicio"`
	FechaFin    string `form:"fecha_fin"`
	Estado      string `form:"estado"`
}

func (q *AppointmentListQuery) ToDomain() (admin.Tab, admin.Filter) {
	tab := admin.Tab(q.Tab)
	if tab == "" {
		tab = admin.TabToday
	}
	return tab, admin.Filter{
		From:   strings.TrimSpace(q.FechaInicio),
		To:     strings.TrimSpace(q.FechaFin),
		Status: admin.Status(strings.TrimSpace(q.Estado)),
	}
}
