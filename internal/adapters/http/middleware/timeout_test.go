package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeout_SetsDeadline(t *testing.T) {
	var (
		deadline time.Time
		ok       bool
	)

	router := gin.New()
	router.Use(Timeout(2 * time.Second))
	router.GET("/api/v1/winebottles", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	before := time.Now()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/winebottles", nil))

	require.True(t, ok)
	assert.WithinDuration(t, before.Add(2*time.Second), deadline, time.Second)
}

func TestTimeout_ExpiredContextIsVisible(t *testing.T) {
	var err error

	router := gin.New()
	router.Use(Timeout(time.Millisecond))
	router.GET("/api/v1/winebottles", func(c *gin.Context) {
		<-c.Request.Context().Done()
		err = c.Request.Context().Err()
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/winebottles", nil))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
