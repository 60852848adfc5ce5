package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	httpadapter "trendlink/internal/adapter/http"
	"trendlink/internal/adapter/postgres"
	"trendlink/internal/adapter/usecase"
	"trendlink/internal/config"
	"trendlink/internal/db"
)

// main is the entry point of the trendlink service. It loads configuration,
// optionally runs database migrations and demo seeding, initializes the
// database pool, repositories and services, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemoData {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	influencerRepo := postgres.NewInfluencerRepository(pool)
	collaborationRepo := postgres.NewCollaborationRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	notifier := usecase.NewNotifier(notificationRepo, logger)
	campaignSvc := usecase.NewCampaignService(campaignRepo)
	influencerSvc := usecase.NewInfluencerService(influencerRepo)
	collaborationSvc := usecase.NewCollaborationService(collaborationRepo, campaignRepo, influencerRepo, notifier)
	analyticsSvc := usecase.NewAnalyticsService(campaignRepo, influencerRepo, collaborationRepo)
	matchingSvc := usecase.NewMatchingService(campaignRepo, influencerRepo)
	notificationSvc := usecase.NewNotificationService(notificationRepo)

	handler := httpadapter.NewHandler(
		campaignSvc, influencerSvc, collaborationSvc,
		analyticsSvc, matchingSvc, notificationSvc,
		logger, cfg.Dev(),
	)

	limiter := httpadapter.NewRateLimiter(rate.Limit(cfg.Rate.PerSecond), cfg.Rate.Burst)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: limiter.Middleware(handler.Router()),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
