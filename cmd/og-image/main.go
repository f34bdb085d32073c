// Command og-image renders the landing page in headless Chrome and publishes
// the screenshot the page advertises as its og:image.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"digital_analytics_site/config"
	"digital_analytics_site/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// captureFunc is swapped in tests so no browser is needed
var captureFunc = services.CaptureSnapshot

type captureFlags struct {
	url      string
	out      string
	key      string
	width    int64
	height   int64
	fullPage bool
	upload   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "og-image",
		Short:         "Social preview image tooling",
		SilenceUsage: true,
	}
	root.AddCommand(newCaptureCmd())
	return root
}

func newCaptureCmd() *cobra.Command {
	defaults := services.DefaultSnapshotOptions()
	f := &captureFlags{}

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Screenshot the running site for its og:image",
		Long: `Loads the site in headless Chrome, scrolls through it so every section has
animated in, and saves a PNG. With --upload the image is published to R2, or to
the local static directory when R2 is not configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.url, "url", "", "page to capture (default APP_URL)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the PNG to this file")
	cmd.Flags().StringVar(&f.key, "key", services.SocialImageKey, "storage key used with --upload")
	cmd.Flags().Int64Var(&f.width, "width", defaults.Width, "viewport width")
	cmd.Flags().Int64Var(&f.height, "height", defaults.Height, "viewport height")
	cmd.Flags().BoolVar(&f.fullPage, "full-page", false, "capture the whole page instead of the first viewport")
	cmd.Flags().BoolVar(&f.upload, "upload", false, "publish the image to storage")
	return cmd
}

func runCapture(cmd *cobra.Command, f *captureFlags) error {
	if f.out == "" && !f.upload {
		return fmt.Errorf("nothing to do: pass --out, --upload, or both")
	}

	cfg := config.Load()
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	target := f.url
	if target == "" {
		target = cfg.AppURL + "/"
	}

	opts := services.DefaultSnapshotOptions()
	opts.Width = f.width
	opts.Height = f.height
	opts.FullPage = f.fullPage
	opts.ChromePath = cfg.ChromePath

	ctx := cmd.Context()
	logger.Info("capturing", zap.String("url", target), zap.Int64("width", opts.Width), zap.Int64("height", opts.Height))
	png, err := captureFunc(ctx, target, opts)
	if err != nil {
		return fmt.Errorf("capture %s: %w", target, err)
	}

	if f.out != "" {
		if err := os.MkdirAll(filepath.Dir(f.out), 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(f.out, png, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", f.out, len(png))
	}

	if f.upload {
		storage := services.NewStorage(ctx, cfg, logger)
		result, err := storage.UploadReader(ctx, bytes.NewReader(png), f.key, "image/png", int64(len(png)))
		if err != nil {
			return fmt.Errorf("upload %s: %w", f.key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", result.URL)
		if f.key == services.SocialImageKey && cfg.OGImageURL == "" && strings.HasPrefix(result.URL, "http") {
			fmt.Fprintf(cmd.OutOrStdout(), "set OG_IMAGE_URL=%s to advertise it\n", result.URL)
		}
	}

	return nil
}
