package middleware

import (
	"log/slog"
	"net/http"

	"padel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders the latest public error for handlers that recorded one
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// CustomRecovery turns a panic into a 500 with the standard error envelope.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error("recovered from panic",
				"error", rec,
				"path", c.Request.URL.Path,
				"request_id", RequestID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	return httperr.NewResponse(http.StatusInternalServerError, internalErrorMessage, nil)
}
