package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/logging"
)

func withTestLogger(ctx context.Context, w io.Writer) context.Context {
	return logging.WithContext(ctx, slog.New(slog.NewJSONHandler(w, nil)))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer

	router := gin.New()
	router.Use(Recovery(slog.New(slog.NewJSONHandler(&buf, nil))))
	router.GET("/api/v1/winebottles", func(*gin.Context) { panic("store corrupted") })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/winebottles", nil)
	req.Header.Set(HeaderRequestID, "req-panic")

	w := httptest.NewRecorder()
	require.NotPanics(t, func() { router.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.Equal(t, "an internal error occurred", resp.Error.Message)
	assert.Equal(t, "req-panic", resp.TraceID)

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "store corrupted")
	assert.NotContains(t, w.Body.String(), "store corrupted")
}

func TestRecovery_AfterWrite(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
	router.GET("/api/v1/winemakers", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late failure")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/winemakers", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRecovery_NoPanic(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
	router.GET("/api/v1/winemakers", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/winemakers", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
