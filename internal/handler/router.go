package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"padel-booking/internal/handler/api"
	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Court       *api.CourtHandler
	Schedule    *api.ScheduleHandler
	User        *api.UserHandler
	Payment     *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery stays outermost so panics in later middleware are caught too
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/reservation-process"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Register},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "/validate", Handler: h.Reservation.Validate},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPut, Path: "/:id/pay", Handler: h.Reservation.Pay},
		})

		addRoutes(apiGroup.Group("/courts"), crudRoutes(h.Court))
		addRoutes(apiGroup.Group("/schedules"), crudRoutes(h.Schedule))
		addRoutes(apiGroup.Group("/users"), crudRoutes(h.User))

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get},
		})
	}
}

type crudHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Patch(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

func crudRoutes(h crudHandler) []route {
	return []route{
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Patch},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
