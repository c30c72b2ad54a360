package health

import (
	"context"
	"errors"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/database"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// PostgresHealthChecker pings PostgreSQL
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker pings Redis
type RedisHealthChecker struct {
	client *database.RedisClient
}

func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

// NATSHealthChecker reports whether the NATS connection is up
type NATSHealthChecker struct {
	client *nats.Client
}

func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.IsConnected() {
		return errors.New("NATS not connected")
	}
	return nil
}

// HealthService runs the registered dependency checks
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	defer h.mu.RUnlock()

	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	for name, checker := range h.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			h.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func newBuildInfo(serviceName, version string) BuildInfo {
	info := BuildInfo{
		Version:     version,
		GitCommit:   os.Getenv("GIT_COMMIT"),
		BuildTime:   os.Getenv("BUILD_TIME"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
	}
	if info.Version == "" {
		info.Version = "development"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	return info
}

// RegisterHealthEndpoints registers /ping and the /health probes
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *HealthService) {
	buildInfo := newBuildInfo(serviceName, version)

	e.GET("/ping", func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	})

	healthGroup := e.Group("/health")

	// load balancer check, no dependencies
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	healthGroup.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName
		response.Version = buildInfo.Version

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})

	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName
		if response.Status == "unhealthy" {
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})

	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
