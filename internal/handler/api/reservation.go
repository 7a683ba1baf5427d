package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Register reservation
// @Description Book a court for a date and time window. Windows touching at a single minute conflict.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservation-process [post]
func (h *ReservationHandler) Register(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	id, err := h.commands.Register(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Validate availability
// @Description Report whether a court is free for the given window without booking it
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateAvailabilityRequest true "Availability request"
// @Success 200 {boolean} boolean
// @Failure 400 {object} httperr.Response
// @Router /api/reservation-process/validate [post]
func (h *ReservationHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	ok, err := h.queries.ValidateAvailability(c.Request.Context(), req.CourtID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, ok)
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservation-process/{id}/cancel [put]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Pay reservation
// @Description Attach a payment to the reservation. Paying twice returns the existing payment.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.PayReservationRequest false "Optional amount, defaults to 0.00"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservation-process/{id}/pay [put]
func (h *ReservationHandler) Pay(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.PayReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortInvalidRequest(c, err)
		return
	}

	if err := h.commands.Pay(c.Request.Context(), id, req.Amount); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservation-process/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondWithView(c, id)
}

// @Summary List reservations
// @Description All reservations in insertion order
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservation-process [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) respondWithView(c *gin.Context, id int64) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
