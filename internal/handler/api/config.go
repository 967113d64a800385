package api

import (
	"net/http"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/domain/catalog"
	resdto "agenda-web/internal/handler/dto/response"
	"agenda-web/internal/handler/httperr"
	"agenda-web/internal/pkg/money"
	"agenda-web/internal/usecase/bookingflow"
	"agenda-web/internal/usecase/profile"

	"github.com/gin-gonic/gin"
)

// BookingSetup exposes the session-independent parts of the booking flow.
type BookingSetup interface {
	Catalog() *catalog.Catalog
	Calendar() bookingflow.Calendar
	Formatter() money.Formatter
}

type ConfigHandler struct {
	setup   BookingSetup
	profile profile.UseCase
}

func NewConfigHandler(setup BookingSetup, profileUseCase profile.UseCase) *ConfigHandler {
	return &ConfigHandler{
		setup:   setup,
		profile: profileUseCase,
	}
}

// @Summary Page configuration
// @Description Business profile, service catalog and selectable date range.
// @Tags config
// @Produce json
// @Success 200 {object} resdto.ConfigResponse
// @Failure 503 {object} httperr.Response
// @Router /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	p, err := h.profile.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, httperr.MsgConnection, nil)
		return
	}

	cal := h.setup.Calendar()
	minDate, maxDate := cal.Bounds()
	c.JSON(http.StatusOK, resdto.NewConfigResponse(
		h.setup.Catalog(),
		h.setup.Formatter(),
		p,
		booking.FormatDate(minDate),
		booking.FormatDate(maxDate),
		cal.Window.Closed,
	))
}
