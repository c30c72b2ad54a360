package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
)

// GracefulServer runs an echo server until a signal arrives, then shuts the
// server and the registered components down in order.
type GracefulServer struct {
	echo     *echo.Echo
	logger   *logger.ZapLogger
	config   models.ServerConfig
	shutdown *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, config models.ServerConfig) *GracefulServer {
	if config.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(config.ReadTimeout) * time.Second
	}
	if config.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(config.WriteTimeout) * time.Second
	}
	return &GracefulServer{
		echo:     e,
		logger:   zapLogger,
		config:   config,
		shutdown: NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a cleanup function run after the HTTP server stopped
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.shutdown.Register(fn)
}

// Start blocks until SIGINT or SIGTERM, then shuts down
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(err))
		_ = s.shutdown.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server then the registered components
func (s *GracefulServer) Shutdown() error {
	timeout := time.Duration(s.config.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("Shutting down server gracefully...")
	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	s.logger.Info("HTTP server stopped, closing components")
	_ = s.shutdown.Shutdown(ctx)
	return err
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions. A failing component
// does not stop the others.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(sm.functions) - 1; i >= 0; i-- {
		if err := sm.functions[i](ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
			errs = append(errs, err)
		}
	}
	sm.functions = nil
	return errors.Join(errs...)
}
