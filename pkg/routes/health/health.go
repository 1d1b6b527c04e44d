package health

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stevenslegal/saksmatch/internal/repositories/dataset"
)

// Checker handles health check endpoints
type Checker struct {
	repo      *dataset.Repository
	version   string
	startTime time.Time
	ready     atomic.Bool
}

// NewChecker creates a new health checker
func NewChecker(repo *dataset.Repository, version string) *Checker {
	return &Checker{
		repo:      repo,
		version:   version,
		startTime: time.Now(),
	}
}

// SetReady sets the readiness state
func (c *Checker) SetReady(ready bool) {
	c.ready.Store(ready)
}

// RegisterRoutes registers health check endpoints
func (c *Checker) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/health", c.Health)
	e.GET("/api/v1/health/live", c.Live)
	e.GET("/api/v1/health/ready", c.Ready)
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
	Firms      int       `json:"firms"`
	Cases      int       `json:"cases"`
	ReportedAt time.Time `json:"reported_at"`
}

// Health returns the overall health status with the loaded dataset sizes.
// The service holds everything in memory, so running means healthy; the
// counts tell an operator whether matching can return anything yet.
func (c *Checker) Health(ctx echo.Context) error {
	firms, cases := c.repo.Snapshot()

	return ctx.JSON(http.StatusOK, &HealthStatus{
		Status:     "healthy",
		Version:    c.version,
		Uptime:     time.Since(c.startTime).Round(time.Second).String(),
		Firms:      len(firms.Names),
		Cases:      len(cases.Records),
		ReportedAt: time.Now(),
	})
}

// Live returns the liveness status (is the service running)
func (c *Checker) Live(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready returns the readiness status (is the service ready to accept traffic)
func (c *Checker) Ready(ctx echo.Context) error {
	if c.ready.Load() {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
	return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
}
