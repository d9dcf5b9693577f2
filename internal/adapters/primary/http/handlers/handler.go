package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"diabetes-predictor/internal/adapters/primary/http/flash"
	"diabetes-predictor/internal/core/services"
	"diabetes-predictor/web"
)

// MetricsWriter writes a metrics snapshot as JSON.
type MetricsWriter interface {
	WriteJSON(w io.Writer)
}

type Handler struct {
	predictionSvc *services.PredictionService
	flash         *flash.Store
	metrics       MetricsWriter
}

// New creates the HTTP handler. metrics may be nil, which disables /metrics.
func New(predictionSvc *services.PredictionService, flashStore *flash.Store, metrics MetricsWriter) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		flash:         flashStore,
		metrics:       metrics,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Pages
	r.GET("/", h.Home)
	r.POST("/predict", h.Predict)

	// Operations
	r.GET("/healthz", h.Healthz)
	if h.metrics != nil {
		r.GET("/metrics", h.Metrics)
	}
}

// NewRouter builds the engine with templates, static assets, the routes and
// the 404 fallback. Middleware runs in the given order.
func NewRouter(h *Handler, middleware ...gin.HandlerFunc) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(middleware...)
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))

	h.RegisterRoutes(&router.RouterGroup)
	router.NoRoute(h.NotFound)

	return router, nil
}
