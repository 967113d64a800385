package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/domain/catalog"
	reqdto "agenda-web/internal/handler/dto/request"
	resdto "agenda-web/internal/handler/dto/response"
	"agenda-web/internal/handler/httperr"
	"agenda-web/internal/handler/middleware"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/pkg/locale"
	"agenda-web/internal/pkg/money"
	"agenda-web/internal/usecase/bookingflow"

	"github.com/gin-gonic/gin"
)

const (
	msgServiceNotFound  = "Servicio no encontrado"
	msgSlotNotAvailable = "El horario seleccionado no está disponible"
	msgSlotInvalid      = "Horario inválido"
	msgSubmitInProgress = "Tu reserva ya se está procesando"
	msgNoDateSelected   = "Selecciona una fecha primero"
)

var errNoDateSelected = errs.New("no date selected")

type BookingHandler struct {
	formatter money.Formatter
	logger    *slog.Logger
}

func NewBookingHandler(formatter money.Formatter, logger *slog.Logger) *BookingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingHandler{
		formatter: formatter,
		logger:    logger,
	}
}

// @Summary Start or resume a booking session
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingResponse
// @Success 201 {object} resdto.BookingResponse
// @Router /booking/session [post]
func (h *BookingHandler) StartSession(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	status := http.StatusOK
	if middleware.SessionCreated(c) {
		status = http.StatusCreated
	}
	h.renderSnapshot(c, status, ctrl)
}

// @Summary Get the booking state
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingResponse
// @Router /booking [get]
func (h *BookingHandler) Get(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	h.renderSnapshot(c, http.StatusOK, ctrl)
}

// @Summary Select or deselect a service
// @Tags booking
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /booking/services/{id}/toggle [post]
func (h *BookingHandler) ToggleService(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, catalog.ErrServiceNotFound, msgServiceNotFound, nil)
		return
	}

	if _, err := ctrl.ToggleServiceByID(id); err != nil {
		h.abortWithFlowError(c, ctrl, err)
		return
	}
	h.renderSnapshot(c, http.StatusOK, ctrl)
}

// @Summary Pick the reservation date
// @Description Waits for the availability answer unless async=true.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SetDateRequest true "Date"
// @Param async query bool false "Return while availability is loading"
// @Success 200 {object} resdto.BookingResponse
// @Success 202 {object} resdto.BookingResponse
// @Failure 422 {object} httperr.Response
// @Router /booking/date [put]
func (h *BookingHandler) SetDate(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req reqdto.SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	done, err := ctrl.SetDate(c.Request.Context(), req.Fecha)
	if err != nil {
		h.abortWithFlowError(c, ctrl, err)
		return
	}

	if done != nil && c.Query("async") == "true" {
		h.renderSnapshot(c, http.StatusAccepted, ctrl)
		return
	}
	if done != nil {
		select {
		case <-done:
		case <-c.Request.Context().Done():
			// the fetch keeps running for the session; nobody is waiting for this answer
			return
		}
	}
	h.renderSnapshot(c, http.StatusOK, ctrl)
}

// @Summary Reload availability for the selected date
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingResponse
// @Failure 422 {object} httperr.Response
// @Router /booking/availability [post]
func (h *BookingHandler) ReloadAvailability(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	date, selected := ctrl.Date()
	if !selected {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.Invalid(errNoDateSelected), msgNoDateSelected, nil)
		return
	}
	ctrl.LoadAvailability(c.Request.Context(), date)
	h.renderSnapshot(c, http.StatusOK, ctrl)
}

// @Summary Pick a time slot
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SelectSlotRequest true "Slot"
// @Success 200 {object} resdto.BookingResponse
// @Failure 422 {object} httperr.Response
// @Router /booking/slot [put]
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req reqdto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	if err := ctrl.SelectSlot(req.Hora); err != nil {
		h.abortWithFlowError(c, ctrl, err)
		return
	}
	h.renderSnapshot(c, http.StatusOK, ctrl)
}

// @Summary Submit the reservation
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitRequest true "Customer data"
// @Success 201 {object} resdto.ConfirmationResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /booking/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req reqdto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	conf, err := ctrl.Submit(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.abortWithFlowError(c, ctrl, err)
		return
	}

	snap, err := resdto.FromSnapshot(middleware.GetSessionID(c), ctrl.Snapshot())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmation(
		conf,
		locale.LongDate(conf.Draft.Date),
		h.formatter.Format(conf.Draft.Subtotal),
		snap,
	))
}

// @Summary Clear the booking
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingResponse
// @Router /booking/reset [post]
func (h *BookingHandler) Reset(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	ctrl.Reset()
	h.renderSnapshot(c, http.StatusOK, ctrl)
}

func (h *BookingHandler) controller(c *gin.Context) (*bookingflow.Controller, bool) {
	ctrl, ok := middleware.GetController(c)
	if !ok {
		// no session middleware mounted in front of this route
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrSessionNotFound, middleware.MsgSessionNotFound, nil)
		return nil, false
	}
	return ctrl, true
}

func (h *BookingHandler) renderSnapshot(c *gin.Context, status int, ctrl *bookingflow.Controller) {
	res, err := resdto.FromSnapshot(middleware.GetSessionID(c), ctrl.Snapshot())
	if err != nil {
		h.logger.Error("failed to render booking snapshot", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(status, res)
}

// abortWithFlowError answers with the notice the controller recorded, plus the current
// snapshot so the page can re-render in one round trip.
func (h *BookingHandler) abortWithFlowError(c *gin.Context, ctrl *bookingflow.Controller, err error) {
	snap := ctrl.Snapshot()
	var detail any
	if res, renderErr := resdto.FromSnapshot(middleware.GetSessionID(c), snap); renderErr != nil {
		h.logger.Error("failed to render booking snapshot", "error", renderErr.Error())
	} else {
		detail = res
	}

	title, msg := "", httperr.MsgInternal
	if snap.Notice != nil {
		title, msg = snap.Notice.Title, snap.Notice.Text
	}

	switch {
	case errs.Is(err, bookingflow.ErrSubmitInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, msgSubmitInProgress, detail)
	case errs.Is(err, catalog.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgServiceNotFound, detail)
	case errs.Is(err, bookingflow.ErrSlotNotAvailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgSlotNotAvailable, detail)
	case errs.Is(err, booking.ErrInvalidSlotFormat):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgSlotInvalid, detail)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithTitledError(c, http.StatusUnprocessableEntity, err, title, msg, detail)
	case errs.Is(err, bookingflow.ErrSubmissionFailed):
		httperr.AbortWithTitledError(c, http.StatusBadGateway, err, title, msg, detail)
	default:
		h.logger.Error("unexpected booking error", "error", err.Error(), "stack", errs.ExtractStackLines(err, 5))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, detail)
	}
}
