package logger

import (
	"contact-service/pkg/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLoggerLevel(t *testing.T) {
	cfg := &config.Config{
		ServiceName: "contact-service",
		Server:      config.ServerConfig{Env: "production"},
		Log:         config.LogConfig{Level: "warn"},
	}
	require.NoError(t, InitLogger(cfg))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	l := GetLogger()
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestMiddlewareLogsFinalStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	e := echo.New()
	e.Use(Middleware())
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "HTTP request completed", entries[0].Message)
	assert.EqualValues(t, http.StatusNoContent, entries[0].ContextMap()["status"])
	assert.Equal(t, "HTTP request failed", entries[1].Message)
	assert.EqualValues(t, http.StatusTeapot, entries[1].ContextMap()["status"])
}

func TestFromContextFallsBackToRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "abc")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	FromContext(c).Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])

	WithContext(c, zap.New(core).With(zap.String("request_id", "override")))
	FromContext(c).Info("again")
	assert.Equal(t, "override", logs.All()[1].ContextMap()["request_id"])
}
