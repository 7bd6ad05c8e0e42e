package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/infrastructure/api"
	apimiddleware "github.com/openmeta/omrest/infrastructure/api/middleware"
	v1 "github.com/openmeta/omrest/infrastructure/api/v1"
	"github.com/openmeta/omrest/internal/config"
	"github.com/openmeta/omrest/internal/log"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                         Server host to bind to (default: 0.0.0.0)
  PORT                         Server port to listen on (default: 8080)
  DATA_DIR                     Data directory (default: ~/.omrest)
  DB_URL                       Database URL (default: sqlite:///{data_dir}/omrest.db)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  SERVER_NAME                  Name reported at / (default: omrest)
  API_KEYS                     Comma-separated keys that may change folders
  CORS_ALLOWED_ORIGINS         Comma-separated origins allowed by CORS
  RATE_LIMIT_PER_MINUTE        API requests per minute per client IP (default: 0, unlimited)
  DEFAULT_PAGE_SIZE            Page size when a request names none (default: 100)
  MAX_PAGE_SIZE                Largest accepted pageSize (default: 1000)
  PATH_CACHE_TTL_SECONDS       Path lookup cache lifetime, 0 disables (default: 300)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(ctx context.Context, envFile, host string, port int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port)

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	slogger := log.Configure(cfg).Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(ctx, slog.LevelInfo, "starting omrest", attrs...)

	client, err := omrest.New(clientOptions(cfg, slogger)...)
	if err != nil {
		return fmt.Errorf("create omrest client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close omrest client", slog.Any("error", err))
		}
	}()

	paging := cfg.Paging()
	apiServer := api.NewAPIServer(client,
		api.WithPaging(v1.NewPaging(paging.DefaultSize(), paging.MaxSize())),
		api.WithCORSOrigins(cfg.CORSAllowedOrigins()),
		api.WithRateLimit(cfg.RateLimitPerMinute()),
		api.WithServiceInfo(cfg.ServerName(), version),
	)
	router := apiServer.Router()

	// Middleware must be added before MountRoutes.
	router.Use(apimiddleware.CorrelationID)
	router.Use(apimiddleware.Logging(slogger))
	apiServer.MountRoutes()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apiServer.ListenAndServe(cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		slogger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return apiServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// clientOptions returns the omrest.Option slice for the configured storage,
// API keys and cache.
func clientOptions(cfg config.AppConfig, logger *slog.Logger) []omrest.Option {
	opts := []omrest.Option{
		omrest.WithDatabaseURL(cfg.DBURL()),
		omrest.WithDataDir(cfg.DataDir()),
		omrest.WithLogger(logger),
		omrest.WithPathCacheTTL(cfg.PathCacheTTL()),
	}
	if keys := cfg.APIKeys(); len(keys) > 0 {
		opts = append(opts, omrest.WithAPIKeys(keys...))
	}
	return opts
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
