package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/dante-library/dante/internal/bootstrap"
	"github.com/dante-library/dante/internal/cache"
	"github.com/dante-library/dante/internal/catalog"
	"github.com/dante-library/dante/internal/config"
	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/database"
	"github.com/dante-library/dante/internal/logger"
	"github.com/dante-library/dante/internal/server"
)

func main() {
	var configFile string
	rootCommand := &cobra.Command{
		Use:           "dante-server",
		Short:         "Serve the curriculum read API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configFile)
		},
	}
	rootCommand.Flags().StringVar(&configFile, "config", os.Getenv("DANTE_CONFIG"), "config file path")

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile string) error {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return fmt.Errorf("load config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := bootstrap.New(log)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	app.OnShutdown("database", func(ctx context.Context) error { return db.Close() })
	if err := database.WaitReady(ctx, db, cfg.Database.ConnectRetries); err != nil {
		_ = db.Close()
		return err
	}

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, serving without cache and rate limiting", zap.Error(err))
	}
	if redisClient != nil {
		app.OnShutdown("redis", func(ctx context.Context) error { return redisClient.Close() })
	}

	srv := newHTTPServer(cfg, db, redisClient, log)
	app.OnShutdown("http", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.Bool("redis", redisClient != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	})
}

// newHTTPServer wires the read API. redisClient may be nil.
func newHTTPServer(cfg *config.Config, db *sqlx.DB, redisClient *redis.Client, log *zap.Logger) *http.Server {
	ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
	svc := catalog.NewService(curriculum.NewDBStore(db), cache.New(redisClient, ttl), log)

	var limiter *server.RateLimiter
	if redisClient != nil {
		limiter = server.NewRateLimiter(redisClient, log)
	}
	router := server.NewRouter(cfg.Server, server.NewHandler(svc, log), limiter, log)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
