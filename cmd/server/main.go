package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digital_analytics_site/config"
	"digital_analytics_site/handlers"
	"digital_analytics_site/middleware"
	"digital_analytics_site/services"
	"digital_analytics_site/services/jobs"
	"digital_analytics_site/services/motion"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Scroll effects must be registered before any page builds its triggers
	motion.Init()
	middleware.InitAssetVersions(cfg.StaticDir, logger)

	content, err := services.NewContentStore(cfg.ContentPath, logger)
	if err != nil {
		return err
	}

	contacts := services.NewContactService(cfg, services.NewResendMailer(cfg, logger), logger)
	var submitter services.ContactSubmitter = services.NewMailSubmitter(contacts)
	if cfg.ContactEndpointURL != "" {
		submitter = services.NewHTTPSubmitter(cfg.ContactEndpointURL, cfg.ContactTimeout)
		logger.Info("contact form posts to external endpoint", zap.String("url", cfg.ContactEndpointURL))
	}
	if cfg.EmailTestMode {
		logger.Warn("email test mode: contact emails are logged, not sent")
	}

	limiter := middleware.NewContactRateLimiter()
	defer limiter.Stop()

	site := handlers.NewSite(content, submitter, contacts)
	e := newServer(cfg, logger, site, limiter)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.ContentPath != "" && !cfg.IsProduction() {
		g.Go(func() error {
			return content.Watch(ctx)
		})
	}

	if cfg.OGRefreshSchedule != "" {
		refresher := &jobs.SocialImageRefresher{
			URL:     cfg.AppURL + "/",
			Key:     services.SocialImageKey,
			Options: snapshotOptions(cfg),
			Capture: services.CaptureSnapshot,
			Storage: services.NewStorage(ctx, cfg, logger),
			Logger:  logger,
		}
		g.Go(func() error {
			return jobs.RunScheduler(ctx, cfg.OGRefreshSchedule, logger, refresher.Run)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func snapshotOptions(cfg *config.Config) services.SnapshotOptions {
	opts := services.DefaultSnapshotOptions()
	opts.ChromePath = cfg.ChromePath
	return opts
}
