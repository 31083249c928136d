package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/database"
	"github.com/twende/twende/internal/pkg/logger"
	natspkg "github.com/twende/twende/internal/pkg/nats"
)

// HealthChecker verifies a single dependency.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connectivity
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return p.client.Ping(ctx)
}

// RedisHealthChecker checks Redis connectivity
type RedisHealthChecker struct {
	client *database.RedisClient
}

func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks NATS connectivity
type NATSHealthChecker struct {
	client *natspkg.Client
}

func NewNATSHealthChecker(client *natspkg.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if !n.client.IsConnected() {
		return context.DeadlineExceeded
	}
	return nil
}

// HealthService aggregates dependency checkers.
type HealthService struct {
	checkers map[string]HealthChecker
}

func NewHealthService() *HealthService {
	return &HealthService{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a named dependency checker.
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// HealthResponse is the payload of the /health endpoint.
type HealthResponse struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo describes a single dependency's health.
type DependencyInfo struct {
	Status  string `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

// CheckAllHealth runs every registered checker.
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	resp := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range h.checkers {
		start := time.Now()
		err := checker.CheckHealth(ctx)
		info := DependencyInfo{
			Status:  "healthy",
			Latency: time.Since(start).String(),
		}
		if err != nil {
			info.Status = "unhealthy"
			info.Error = err.Error()
			resp.Status = "degraded"

			logger.Warn("Dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		}
		resp.Dependencies[name] = info
	}

	return resp
}

// RegisterHealthEndpoints registers /health and /ping on the Echo server.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *HealthService) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})

	e.GET("/health", func(c echo.Context) error {
		resp := healthService.CheckAllHealth(c.Request().Context())
		resp.Service = serviceName
		resp.Version = version

		status := http.StatusOK
		if resp.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, resp)
	})
}
