package handlers

import (
	"context"
	"net/http"
	"time"

	"livelink/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pinger is a backing store the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
}

// NewHealthHandler probes each named dependency on every request. Disabled
// dependencies are simply left out of checks.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

type healthStatus struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := healthStatus{Status: "healthy", Version: utils.AppVersion}
	code := http.StatusOK
	if len(h.checks) > 0 {
		status.Dependencies = make(map[string]string, len(h.checks))
	}
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			status.Dependencies[name] = err.Error()
			status.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		status.Dependencies[name] = "ok"
	}
	c.JSON(code, status)
}
