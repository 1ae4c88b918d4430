package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"drivesort/internal/config"
	handlers "drivesort/internal/http/handler"
	"drivesort/internal/http/middleware"
	appotel "drivesort/internal/otel"
	"drivesort/internal/secrets"
	"drivesort/internal/service"
	"drivesort/internal/store/drive"
)

func main() {
	once := flag.Bool("once", false, "run a single batch pass against the configured root folder and exit")
	flag.Parse()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	// Initialize tracing (degrades to noop when no exporter is reachable)
	shutdownTracing, err := appotel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer shutdownTracing(ctx)

	// Retrieve the service account key from the secrets backend and exchange
	// it for a Drive client. Both failures are fatal: without credentials
	// there is nothing to organize.
	provider, err := secrets.NewAWS(ctx, cfg.AWS)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize secrets provider")
	}
	key, err := provider.Fetch(ctx, cfg.AWS.SecretName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to retrieve service account credentials")
	}
	driveStore, err := drive.New(ctx, key)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize drive client")
	}

	// Metrics registry shared by the organizer and the HTTP middleware
	registry := prometheus.NewRegistry()
	metrics, err := service.NewMetrics(registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register organizer metrics")
	}

	organizer := service.NewOrganizer(driveStore, metrics, logger)

	if *once {
		runOnce(ctx, logger, organizer, cfg.Drive.RootFolderID)
		return
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register http metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, cfg.Drive.RootFolderID, organizer)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// runOnce performs one batch pass and prints the summary as JSON, mirroring
// the service's POST /organize response. Setup failures exit non-zero;
// per-file failures are already part of the summary.
func runOnce(ctx context.Context, logger zerolog.Logger, organizer service.Organizer, rootFolderID string) {
	summary, err := organizer.Run(ctx, rootFolderID)
	if err != nil {
		logger.Fatal().Err(err).Msg("batch run failed")
	}

	out := map[string]any{
		"message":           fmt.Sprintf("Processed %d files in folder %s.", summary.Processed, summary.RootFolderID),
		"processed":         summary.Processed,
		"total_items_found": summary.TotalItems,
	}
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(out); err != nil {
		logger.Fatal().Err(err).Msg("failed to encode summary")
	}
}
