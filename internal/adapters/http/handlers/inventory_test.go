package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/wine-collection-service/internal/adapters/memory"
	"github.com/jsamuelsen/wine-collection-service/internal/app"
)

// inventoryAPI is an engine serving the winemaker and bottle routes over
// fresh in-memory stores.
type inventoryAPI struct {
	engine  *gin.Engine
	service *app.InventoryService
}

type apiOption func(*app.InventoryServiceConfig)

func strictMutations(cfg *app.InventoryServiceConfig) { cfg.StrictMutations = true }

func newInventoryAPI(t *testing.T, seed bool, opts ...apiOption) *inventoryAPI {
	t.Helper()

	winemakers := memory.NewWinemakerStore()
	cfg := app.InventoryServiceConfig{
		Winemakers: winemakers,
		Bottles:    memory.NewBottleStore(winemakers),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registerer: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	svc := app.NewInventoryService(cfg)
	if seed {
		require.NoError(t, svc.SeedSampleData(context.Background()))
	}

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewWinemakerHandler(svc).RegisterWinemakerRoutes(api)
	NewBottleHandler(svc).RegisterBottleRoutes(api)

	return &inventoryAPI{engine: engine, service: svc}
}

func (a *inventoryAPI) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())

	return out
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decodeBody[dto.ErrorResponse](t, w)
}
