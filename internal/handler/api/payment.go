package api

import (
	"net/http"

	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PaymentHandler is read-only; payments are created by paying a reservation.
type PaymentHandler struct {
	queries queries.PaymentQueries
}

func NewPaymentHandler(q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{queries: q}
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} resdto.PaymentResponse
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}
