package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/dealvoy/source-registry-server/internal/api"
	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/config"
	"github.com/dealvoy/source-registry-server/internal/coordinator"
	"github.com/dealvoy/source-registry-server/internal/logger"
	"github.com/dealvoy/source-registry-server/internal/registry"
	"github.com/dealvoy/source-registry-server/internal/scraper"
	"github.com/dealvoy/source-registry-server/internal/service/inmemory"
	"github.com/dealvoy/source-registry-server/internal/status"
	"github.com/dealvoy/source-registry-server/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the source registry API server",
	Long: `Start the source registry API server.

The server loads the embedded source catalog (or a catalog file given via the
configuration) and serves aggregated product searches, source listings, and
per-source usage statistics over REST.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second  // Enough for an in-flight fan-out to wind down
	serverRequestTimeout   = 120 * time.Second // Fan-outs are paced, so requests can be slow
	serverReadTimeout      = 10 * time.Second  // Enough for headers and small requests
	serverWriteTimeout     = 125 * time.Second // Must be > serverRequestTimeout to let middleware handle timeout
	serverIdleTimeout      = 60 * time.Second  // Keep connections alive for reuse
)

func init() {
	serveCmd.Flags().String("address", config.DefaultAddress, "Address to listen on")
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format)")

	err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address"))
	if err != nil {
		logger.Fatalf("Failed to bind address flag: %v", err)
	}
	err = viper.BindPFlag("config", serveCmd.Flags().Lookup("config"))
	if err != nil {
		logger.Fatalf("Failed to bind config flag: %v", err)
	}
}

func loadConfig() (*config.Config, error) {
	var opts []config.Option
	if path := viper.GetString("config"); path != "" {
		opts = append(opts, config.WithConfigPath(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// The address flag wins over the config file when set explicitly.
	if addr := viper.GetString("address"); addr != "" && addr != config.DefaultAddress {
		cfg.Address = addr
	}

	return cfg, nil
}

// buildRegistry assembles the catalog and registry from config
func buildRegistry(cfg *config.Config) (*registry.Registry, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	reg := registry.New(cat, scraper.NewDefaultResolver(),
		registry.WithPacingDelay(cfg.GetPacingDelay()),
		registry.WithSourceTimeout(cfg.GetSourceTimeout()),
	)

	logger.Infof("Loaded catalog with %d sources across %d categories",
		len(reg.Names()), len(reg.Categories()))

	return reg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Infof("Starting source registry server on %s", cfg.Address)

	// Telemetry
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	metricsMiddleware, err := telemetry.MetricsMiddleware(meterProvider)
	if err != nil {
		return fmt.Errorf("failed to create metrics middleware: %w", err)
	}
	searchMetrics, err := telemetry.NewSearchMetrics(meterProvider)
	if err != nil {
		return fmt.Errorf("failed to create search metrics: %w", err)
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	svc, err := inmemory.New(reg,
		inmemory.WithDefaultMaxResults(cfg.Search.MaxResultsPerSource),
		inmemory.WithCacheTTL(cfg.GetCacheTTL()),
		inmemory.WithSearchMetrics(searchMetrics),
	)
	if err != nil {
		return fmt.Errorf("failed to create search service: %w", err)
	}

	// Stats persistence and background flushing
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	statsPersistence := status.NewFileStatsPersistence(cfg.DataDir)
	statsCoordinator := coordinator.New(reg, statsPersistence, cfg.GetSnapshotInterval())

	coordCtx, coordCancel := context.WithCancel(context.Background())
	defer coordCancel()
	go func() {
		if err := statsCoordinator.Start(coordCtx); err != nil {
			logger.Errorf("Stats coordinator failed: %v", err)
		}
	}()

	// HTTP server
	router := api.NewServer(svc,
		api.WithMiddlewares(
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(serverRequestTimeout),
			api.LoggingMiddleware,
			metricsMiddleware,
		),
	)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	go func() {
		logger.Infof("Server listening on %s", cfg.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	if err := statsCoordinator.Stop(); err != nil {
		logger.Errorf("Failed to stop stats coordinator: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	if mp, ok := meterProvider.(*sdkmetric.MeterProvider); ok {
		if err := mp.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Failed to shut down meter provider: %v", err)
		}
	}

	logger.Info("Server shutdown complete")
	return nil
}
