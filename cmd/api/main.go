package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/ai"
	"github.com/linskybing/residence-hub/internal/api/middleware"
	"github.com/linskybing/residence-hub/internal/api/routes"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/config/db"
	"github.com/linskybing/residence-hub/internal/cron"
	"github.com/linskybing/residence-hub/internal/logging"
	"github.com/linskybing/residence-hub/internal/realtime"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration from environment variables, .env and CONFIG_FILE
	config.LoadConfig()
	logging.Setup(config.LogLevel, config.LogFormat)

	// Initialize JWT signing key
	middleware.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, config.TracesExporter)
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(db.DB)
	hub := realtime.NewHub(config.AllowedOrigins)

	deps := application.Deps{
		Publisher:         hub,
		SuggestionTimeout: config.AITimeout,
	}
	if config.OpenAIAPIKey != "" {
		client, err := ai.NewOpenAIClient(config.OpenAIAPIKey, config.OpenAIModel, config.OpenAIBaseURL)
		if err != nil {
			slog.Error("Failed to create AI client", "error", err)
			os.Exit(1)
		}
		deps.Suggester = client
	} else {
		slog.Warn("OPENAI_API_KEY not set, AI suggestions disabled")
	}
	services := application.New(repos, deps)

	var limiter middleware.Limiter
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		defer func() { _ = rdb.Close() }()
		limiter = middleware.NewRedisLimiter(rdb, "ratelimit:issues", config.IssueRateLimit, config.IssueRateWindow)
	} else {
		limiter = middleware.NewLocalLimiter(config.IssueRateLimit, config.IssueRateWindow)
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, routes.Deps{
		Repos:          repos,
		Services:       services,
		Hub:            hub,
		IssueLimiter:   limiter,
		AllowedOrigins: config.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start background tasks
	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		slog.Info("Starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.Info("Shutting down")
		err := srv.Shutdown(shutdownCtx)
		services.Suggestion.Close()
		if terr := shutdownTracing(shutdownCtx); terr != nil {
			slog.Warn("Failed to flush traces", "error", terr)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
