// Package main runs the wine collection inventory service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http"
	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/wine-collection-service/internal/adapters/memory"
	"github.com/jsamuelsen/wine-collection-service/internal/app"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/config"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/logging"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/telemetry"
	"github.com/jsamuelsen/wine-collection-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// readinessCheckTimeout bounds each check behind /-/ready.
const readinessCheckTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	if telProvider.Enabled() {
		logger.Info("exporting telemetry", slog.String("endpoint", cfg.Telemetry.Endpoint))
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	winemakers := memory.NewWinemakerStore()
	inventory := app.NewInventoryService(app.InventoryServiceConfig{
		Winemakers:      winemakers,
		Bottles:         memory.NewBottleStore(winemakers),
		Logger:          logger,
		Registerer:      prometheus.DefaultRegisterer,
		StrictMutations: cfg.Inventory.StrictMutations,
	})

	if cfg.Inventory.SeedSampleData {
		if err := inventory.SeedSampleData(ctx); err != nil {
			return fmt.Errorf("seeding sample data: %w", err)
		}
	}

	healthRegistry := ports.NewHealthRegistry(ports.WithCheckTimeout(readinessCheckTimeout))
	if err := healthRegistry.Register(winemakers); err != nil {
		return fmt.Errorf("registering inventory store health check: %w", err)
	}

	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(
		logger,
		&cfg.App,
		handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		handlers.NewWinemakerHandler(inventory),
		handlers.NewBottleHandler(inventory),
	)
	routerCfg.Timeout = cfg.Server.RequestTimeout
	http.SetupRouter(server.Engine(), routerCfg)

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until SIGINT, SIGTERM or a server error, then drains
// in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-signalCtx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
