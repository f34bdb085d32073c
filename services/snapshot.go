package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// SnapshotOptions controls how a page is captured for its social preview image
type SnapshotOptions struct {
	Width  int64
	Height int64
	// Settle is how long to wait after each scroll step so scroll-triggered animations finish
	Settle   time.Duration
	FullPage bool
	Timeout  time.Duration
	// ChromePath overrides the browser binary (headless-shell in Docker)
	ChromePath string
}

// DefaultSnapshotOptions returns the OpenGraph image size (1200x630)
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		Width:   1200,
		Height:  630,
		Settle:  900 * time.Millisecond,
		Timeout: 60 * time.Second,
	}
}

// scrollOffsets returns the scroll positions that bring every part of the
// page into view, stepping by most of a viewport so each threshold is crossed
func scrollOffsets(pageHeight, viewport int64) []int64 {
	if viewport <= 0 {
		return nil
	}
	step := viewport * 4 / 5
	if step == 0 {
		step = 1
	}
	offsets := []int64{0}
	for y := step; y < pageHeight; y += step {
		offsets = append(offsets, y)
	}
	return offsets
}

// CaptureSnapshot renders url in headless Chrome, scrolls through the page so
// every section animates in, then returns a PNG screenshot from the top
func CaptureSnapshot(ctx context.Context, url string, opts SnapshotOptions) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(int(opts.Width), int(opts.Height)),
	)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pageHeight float64
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(opts.Width, opts.Height),
		chromedp.Navigate(url),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.documentElement.scrollHeight`, &pageHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}

	// Walk down the page, then back to the top for the capture
	var scrolled float64
	for _, y := range append(scrollOffsets(int64(pageHeight), opts.Height), 0) {
		err := chromedp.Run(browserCtx,
			chromedp.Evaluate(fmt.Sprintf(`window.scrollTo(0, %d); window.scrollY`, y), &scrolled),
			chromedp.Sleep(opts.Settle),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scroll to %d: %w", y, err)
		}
	}

	var buf []byte
	if err := chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, err = screenshotParams(opts, pageHeight).Do(ctx)
		return err
	})); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return buf, nil
}

// screenshotParams captures the first viewport, or the whole document height with FullPage, always as PNG
func screenshotParams(opts SnapshotOptions, pageHeight float64) *page.CaptureScreenshotParams {
	params := page.CaptureScreenshot().WithFormat(page.CaptureScreenshotFormatPng)
	if !opts.FullPage {
		return params
	}
	return params.
		WithCaptureBeyondViewport(true).
		WithClip(&page.Viewport{X: 0, Y: 0, Width: float64(opts.Width), Height: pageHeight, Scale: 1})
}
