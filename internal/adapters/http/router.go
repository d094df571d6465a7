package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/config"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles the /-/ operational endpoints.
	HealthHandler *handlers.HealthHandler

	// WinemakerHandler handles /api/v1/winemakers.
	WinemakerHandler *handlers.WinemakerHandler

	// BottleHandler handles /api/v1/winebottles.
	BottleHandler *handlers.BottleHandler

	// Timeout is the API request deadline. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - otelgin spans, then request metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline on /api/v1 only
//
// Route groups:
//   - /-/ (internal): probes, build info and Prometheus metrics
//   - /api/v1/winemakers and /api/v1/winebottles: the inventory API
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	// Probes get no timeout
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the inventory routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.WinemakerHandler != nil {
		cfg.WinemakerHandler.RegisterWinemakerRoutes(rg)
	}

	if cfg.BottleHandler != nil {
		cfg.BottleHandler.RegisterBottleRoutes(rg)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	winemakerHandler *handlers.WinemakerHandler,
	bottleHandler *handlers.BottleHandler,
) RouterConfig {
	return RouterConfig{
		Logger:           logger,
		AppConfig:        appCfg,
		HealthHandler:    healthHandler,
		WinemakerHandler: winemakerHandler,
		BottleHandler:    bottleHandler,
		Timeout:          DefaultRequestTimeout,
	}
}
