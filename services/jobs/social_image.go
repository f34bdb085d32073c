package jobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"digital_analytics_site/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CaptureFunc renders a page to PNG
type CaptureFunc func(ctx context.Context, url string, opts services.SnapshotOptions) ([]byte, error)

// SocialImageRefresher re-captures the landing page and republishes its og:image
type SocialImageRefresher struct {
	URL     string
	Key     string
	Options services.SnapshotOptions
	Capture CaptureFunc
	Storage services.StorageProvider
	Logger  *zap.Logger
}

// Run captures once and uploads the result
func (r *SocialImageRefresher) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if r.Storage == nil || !r.Storage.IsConfigured() {
		return errors.New("social image refresh: storage not configured")
	}

	start := time.Now()
	png, err := r.Capture(ctx, r.URL, r.Options)
	if err != nil {
		return fmt.Errorf("capture %s: %w", r.URL, err)
	}

	result, err := r.Storage.UploadReader(ctx, bytes.NewReader(png), r.Key, "image/png", int64(len(png)))
	if err != nil {
		return fmt.Errorf("upload %s: %w", r.Key, err)
	}

	logger.Info("social image refreshed",
		zap.String("url", result.URL),
		zap.Int64("bytes", result.FileSize),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// RunScheduler runs job on the cron schedule until ctx is done, then waits
// for a running job to finish. Runs never overlap; a run still going when the
// next one is due is skipped.
func RunScheduler(ctx context.Context, schedule string, logger *zap.Logger, job func(context.Context) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(schedule, func() {
		if err := job(ctx); err != nil {
			logger.Error("scheduled job failed", zap.String("schedule", schedule), zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.Info("scheduler started", zap.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("scheduler stopped")
	return nil
}
