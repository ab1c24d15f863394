package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type RouterOptions struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	// RateLimit runs ahead of every /api route; nil disables limiting.
	RateLimit gin.HandlerFunc
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(h.log))
	r.Use(CORS(opts.CORSOrigins))

	r.GET("/healthz", h.healthz)
	r.GET("/readyz", h.readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(RequestTimeout(opts.RequestTimeout))
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}
	api.GET("/slots", h.getSlots)

	b := api.Group("/bookings")
	b.GET("", h.listBookings)
	b.POST("", h.createBooking)
	b.POST("/conflict", h.checkConflict)
	b.GET("/occupied", h.occupied)
	b.PATCH("/:id", h.rescheduleBooking)
	b.DELETE("/:id", h.cancelBooking)

	return r
}

// NewServer wraps the router with otelhttp so each request opens a server span.
func NewServer(addr string, router http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(router, "http"),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
