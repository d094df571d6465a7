package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/wine-collection-service/internal/mocks"
	"github.com/jsamuelsen/wine-collection-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveHealth(h *HealthHandler, target string) *httptest.ResponseRecorder {
	engine := gin.New()
	h.RegisterHealthRoutesOnEngine(engine)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.4.0", "9f2c1ab", "2024-03-10T08:00:00Z")

	assert.Equal(t, "1.4.0", bi.Version)
	assert.Equal(t, "9f2c1ab", bi.Commit)
	assert.Equal(t, "2024-03-10T08:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	w := serveHealth(NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		result     *ports.HealthResult
		wantStatus int
		wantBody   string
	}{
		{
			name: "store healthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"inventory-store": {Status: ports.HealthStatusHealthy},
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   "inventory-store",
		},
		{
			name: "store unhealthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"inventory-store": {Status: ports.HealthStatusUnhealthy, Message: "bottle 7 points at missing winemaker 3"},
				},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "missing winemaker 3",
		},
		{
			name:       "nothing registered",
			result:     &ports.HealthResult{Status: ports.HealthStatusHealthy},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result)

			w := serveHealth(NewHealthHandler(registry, BuildInfo{}), "/-/ready")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	bi := BuildInfo{Version: "1.4.0", Commit: "9f2c1ab", BuildTime: "2024-03-10T08:00:00Z", GoVersion: "go1.25.7"}

	w := serveHealth(NewHealthHandler(mocks.NewMockHealthRegistry(t), bi), "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var got BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, bi, got)
}

func TestHealthHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "wine_inventory_bottles", Help: "Bottles stored."})
	reg.MustRegister(gauge)
	gauge.Set(4)

	w := serveHealth(NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}, WithGatherer(reg)), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "wine_inventory_bottles 4")
}

func TestHealthHandler_RegisterHealthRoutes(t *testing.T) {
	engine := gin.New()
	NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}).RegisterHealthRoutes(engine.Group("/-"))

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics"} {
		assert.True(t, routes[want], "missing route: %s", want)
	}
}
