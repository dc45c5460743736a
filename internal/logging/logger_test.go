package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf, Service: "blogapi"})

	logger.Debug().Msg("debug suppressed")
	assert.Zero(t, buf.Len())

	logger.Info().Msg("visible message")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible message", entry["message"])
	assert.Equal(t, "blogapi", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNew_Levels(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, New(Options{Level: in, Writer: &bytes.Buffer{}}).GetLevel())
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf, Format: "console"})
	logger.Info().Msg("pretty")

	out := buf.String()
	assert.Contains(t, out, "pretty")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf})

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))

	var scoped *zerolog.Logger
	e.GET("/ping", func(c echo.Context) error {
		scoped = zerolog.Ctx(c.Request().Context())
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ping", entry["uri"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), entry["request_id"])

	require.NotNil(t, scoped)
	assert.NotEqual(t, zerolog.Disabled, scoped.GetLevel())
}
