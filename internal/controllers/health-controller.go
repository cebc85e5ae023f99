package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	serviceName = "gin-pizzeria-api"
	bannerHTML  = "<h1>Code challenge</h1>"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthController serves the landing banner and the health check
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new instance of HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Index serves the static landing banner
func (h *HealthController) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(bannerHTML))
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "healthy", http.StatusOK
	if err := h.db.PingContext(pingCtx); err != nil {
		logFailure(ctx, "health_check", err)
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	ctx.JSON(code, models.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
	})
}
