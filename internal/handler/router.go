package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seat-reservation/internal/handler/api"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/handler/middleware"
	"seat-reservation/internal/handler/validation"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/errs"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Hold    *api.HoldHandler
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Event   *api.EventHandler
	Seat    *api.SeatHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group("/holds"), []route{
		{Method: http.MethodPost, Path: "", Handler: h.Hold.Create},
	})

	addRoutes(engine.Group("/bookings"), []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
	})

	addRoutes(engine.Group("/payments"), []route{
		{Method: http.MethodPost, Path: "", Handler: h.Payment.Submit, Mw: []gin.HandlerFunc{requireIdempotencyKey}},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get},
	})

	addRoutes(engine.Group("/events"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Event.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
	})

	addRoutes(engine.Group("/seats"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Seat.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Seat.Get},
	})
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

// requireIdempotencyKey rejects a payment before the body is even read.
func requireIdempotencyKey(c *gin.Context) {
	if c.GetHeader(api.IdempotencyKeyHeader) == "" {
		httperr.AbortWithDomainError(c, errs.ErrMissingIdempotencyKey)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
