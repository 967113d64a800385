package api

import (
	"net/http"
	"strconv"

	reqdto "agenda-web/internal/handler/dto/request"
	resdto "agenda-web/internal/handler/dto/response"
	"agenda-web/internal/handler/httperr"
	"agenda-web/internal/handler/middleware"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/pkg/cookie"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/usecase/admin"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidCredentials = "Credenciales inválidas"
	msgAppointmentMissing = "Cita no encontrada"
	msgRequestRejected    = "No se pudo completar la operación"
	msgPasswordChanged    = "Contraseña actualizada correctamente"
	msgStatusChanged      = "Estado actualizado"
)

type AdminHandler struct {
	adminUseCase admin.UseCase
	cookieCfg    config.CookieConfig
}

func NewAdminHandler(adminUseCase admin.UseCase, cfg config.Config) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	session, err := h.adminUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortWithAdminError(c, err, msgInvalidCredentials)
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, session.Token)
	c.JSON(http.StatusOK, resdto.FromSession(session))
}

// @Summary Admin logout
// @Tags admin
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/me [get]
func (h *AdminHandler) Verify(c *gin.Context) {
	p, err := h.adminUseCase.Verify(c.Request.Context(), middleware.GetAdminToken(c))
	if err != nil {
		h.abortWithAdminError(c, err, msgInvalidCredentials)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": resdto.FromProfile(p)})
}

// @Summary Dashboard counters
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUseCase.Stats(c.Request.Context(), middleware.GetAdminToken(c))
	if err != nil {
		h.abortWithAdminError(c, err, msgRequestRejected)
		return
	}
	res, err := resdto.FromStats(stats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"estadisticas": res})
}

// @Summary List appointments
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param tab query string false "hoy | futuras | todas"
// @Param fecha_inicio query string false "YYYY-MM-DD (todas only)"
// @Param fecha_fin query string false "YYYY-MM-DD (todas only)"
// @Param estado query string false "pendiente | confirmada | cancelada (todas only)"
// @Success 200 {object} map[string][]resdto.AppointmentResponse
// @Router /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	var q reqdto.AppointmentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	tab, filter := q.ToDomain()
	items, err := h.adminUseCase.ListAppointments(c.Request.Context(), middleware.GetAdminToken(c), tab, filter)
	if err != nil {
		h.abortWithAdminError(c, err, msgRequestRejected)
		return
	}

	res, err := resdto.FromAppointments(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"citas": res})
}

// @Summary Confirm or cancel an appointment
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Router /admin/appointments/{id}/status [patch]
func (h *AdminHandler) ChangeStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	if err := h.adminUseCase.ChangeStatus(c.Request.Context(), middleware.GetAdminToken(c), id, req.ToDomain()); err != nil {
		h.abortWithAdminError(c, err, msgRequestRejected)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgStatusChanged})
}

// @Summary Delete an appointment
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 204 "No Content"
// @Router /admin/appointments/{id} [delete]
func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.adminUseCase.DeleteAppointment(c.Request.Context(), middleware.GetAdminToken(c), id); err != nil {
		h.abortWithAdminError(c, err, msgRequestRejected)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change the admin password
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /admin/password [post]
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	err := h.adminUseCase.ChangePassword(
		c.Request.Context(),
		middleware.GetAdminToken(c),
		req.CurrentPassword,
		req.NewPassword,
		req.ConfirmPassword,
	)
	if err != nil {
		h.abortWithAdminError(c, err, msgRequestRejected)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPasswordChanged})
}

func appointmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.Invalid(admin.ErrInvalidAppointmentID),
			errs.UserHint(admin.ErrInvalidAppointmentID), nil)
		return 0, false
	}
	return id, true
}

// abortWithAdminError prefers the message the backend (or local validation) attached to
// err over fallback.
func (h *AdminHandler) abortWithAdminError(c *gin.Context, err error, fallback string) {
	msg := errs.UserHint(err)
	if msg == "" {
		msg = fallback
	}

	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
	case errs.Is(err, errs.ErrUnauthorized):
		cookie.ClearAdminToken(c, h.cookieCfg)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
	case errs.Is(err, errs.ErrNotFound):
		if errs.UserHint(err) == "" {
			msg = msgAppointmentMissing
		}
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case errs.Is(err, errs.ErrBackendRejected):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errs.Is(err, errs.ErrBackendUnavailable), errs.Is(err, errs.ErrMalformedResponse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, httperr.MsgConnection, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
	}
}
