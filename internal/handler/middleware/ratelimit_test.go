//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/config"
	"padel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("rejects once the burst is spent", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

		assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil).Code)
		assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil).Code)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil).Code)
		}
	})
}
