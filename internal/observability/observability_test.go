package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Favour-325/campusly-myjfn2/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "WARN"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger(config.LoggerConfig{Level: "chatty"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), metrics))
	app.Get("/posts/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "0" {
			return c.Status(fiber.StatusTooManyRequests).SendString("slow down")
		}
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/posts/0", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))

	assert.Equal(t, int64(1), metrics.Requests("/posts/:id", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(1), metrics.Requests("/posts/:id", http.MethodGet, http.StatusTooManyRequests))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "req-123", entries[1].ContextMap()["request_id"])
}

func TestMetricsLatencyAndErrors(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/comments", http.MethodPost, 201, 10*time.Millisecond)
	m.RecordRequest("/comments", http.MethodPost, 201, 30*time.Millisecond)
	m.RecordError("/comments", http.MethodPost, "RATE_LIMITED")

	assert.Equal(t, 20*time.Millisecond, m.AverageLatency("/comments", http.MethodPost, 201))
	assert.Zero(t, m.AverageLatency("/feedback", http.MethodPost, 201))
	assert.Equal(t, int64(1), m.Errors("/comments", http.MethodPost, "RATE_LIMITED"))

	var nilMetrics *Metrics
	nilMetrics.RecordRequest("/", http.MethodGet, 200, time.Millisecond)
}
