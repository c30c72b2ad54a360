package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_RunStopsOnContext(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{
		Host:            "127.0.0.1",
		Port:            freePort(t),
		ReadTimeout:     5,
		ShutdownTimeout: 2,
	})

	var order []string
	s.OnShutdown(func(context.Context) error { order = append(order, "postgres"); return nil })
	s.OnShutdown(func(context.Context) error { order = append(order, "nats"); return errors.New("drain failed") })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.Run(ctx))
	assert.Equal(t, []string{"nats", "postgres"}, order)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
}

func TestShutdownManager_JoinsErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	boom := errors.New("boom")
	sm.Register(func(context.Context) error { return boom })
	sm.Register(func(context.Context) error { return nil })

	err := sm.Shutdown(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, sm.Shutdown(context.Background()))
}

func TestGracefulServer_NoLogsAfterLastHook(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	zapLogger := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := NewGracefulServer(e, zapLogger, models.ServerConfig{
		Host:            "127.0.0.1",
		Port:            freePort(t),
		ShutdownTimeout: 2,
	})

	seen := -1
	s.OnShutdown(func(context.Context) error { seen = logs.Len(); return nil })
	s.OnShutdown(func(context.Context) error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, seen, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("HTTP server stopped, closing components").Len())
}
