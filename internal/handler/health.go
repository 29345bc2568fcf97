package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/middleware"
	"github.com/deppfellow/movie-api/internal/server"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"
)

// dependencyCheck pings one dependency. Required checks turn the whole
// status unhealthy on failure; the others are informational.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// CheckResult is the outcome of one dependency ping.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// HealthHandler reports whether the service and its dependencies are reachable.
type HealthHandler struct {
	Handler
	checks []dependencyCheck
}

// NewHealthHandler registers the checks enabled in config: the database
// ping is required, Redis (when configured) is informational.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}

	cfg := s.Config.Observability.HealthChecks
	if !cfg.Enabled {
		return h
	}

	if cfg.Runs(checkDatabase) && s.DB != nil {
		h.checks = append(h.checks, dependencyCheck{
			name:     checkDatabase,
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}

	if cfg.Runs(checkRedis) && s.Redis != nil {
		h.checks = append(h.checks, dependencyCheck{
			name: checkRedis,
			ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return h
}

// CheckHealth answers 200 when every required check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult, len(h.checks)),
	}

	timeout := h.server.Config.Observability.HealthChecks.Timeout
	isHealthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			response.Checks[check.name] = CheckResult{
				Status:       "unhealthy",
				ResponseTime: elapsed.String(),
				Error:        err.Error(),
			}
			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordHealthCheckError(map[string]interface{}{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		response.Checks[check.name] = CheckResult{
			Status:       "healthy",
			ResponseTime: elapsed.String(),
		}
	}

	if !isHealthy {
		response.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordHealthCheckError(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}
