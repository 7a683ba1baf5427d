package api

import (
	"net/http"
	"strconv"
	"strings"

	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID   = errs.New("id must be a positive integer")
	errIDMismatch  = errs.New("body id does not match path id")
	errIDForbidden = errs.New("a new entity cannot already have an id")
)

type errorMapping struct {
	target  error
	status  int
	message string
	detail  bool
}

// Order matters: the first matching mark wins.
var errorMappings = []errorMapping{
	{errs.ErrInvalidFormat, http.StatusBadRequest, "Invalid date or time format", true},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed", true},
	{errs.ErrReservationConflict, http.StatusConflict, errs.ErrReservationConflict.Error(), false},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid reservation state transition", true},
	{errs.ErrEntityInUse, http.StatusConflict, "Entity is still referenced by other records", false},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found", false},
	{errs.ErrCourtNotFound, http.StatusNotFound, "Court not found", false},
	{errs.ErrScheduleNotFound, http.StatusNotFound, "Schedule not found", false},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found", false},
	{errs.ErrPaymentNotFound, http.StatusNotFound, "Payment not found", false},
	{errs.ErrReferenceNotFound, http.StatusNotFound, "Referenced court or user not found", false},
}

// abortWithUseCaseError translates a use-case error into the error envelope.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.detail {
				detail = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, m.message, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

// checkBodyID enforces that a replace payload either omits its id or repeats the path id.
func checkBodyID(c *gin.Context, pathID int64, bodyID *int64) bool {
	if bodyID != nil && *bodyID != pathID {
		httperr.AbortWithError(c, http.StatusBadRequest, errIDMismatch, "Invalid id", nil)
		return false
	}
	return true
}

func rejectBodyID(c *gin.Context, bodyID *int64, entity string) bool {
	if bodyID != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errIDForbidden, "A new "+entity+" cannot already have an ID", nil)
		return false
	}
	return true
}

func location(c *gin.Context, id int64) string {
	return strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
}
