package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSnapshotOptions(t *testing.T) {
	opts := DefaultSnapshotOptions()
	assert.Equal(t, int64(1200), opts.Width)
	assert.Equal(t, int64(630), opts.Height)
	assert.False(t, opts.FullPage)
	assert.Greater(t, opts.Settle, 800*time.Millisecond, "longer than one fade")
}

func TestScrollOffsets(t *testing.T) {
	assert.Equal(t, []int64{0}, scrollOffsets(500, 630))
	assert.Equal(t, []int64{0, 504, 1008, 1512}, scrollOffsets(2000, 630))
	assert.Nil(t, scrollOffsets(2000, 0))
}

func TestCaptureSnapshotInvalidSize(t *testing.T) {
	_, err := CaptureSnapshot(context.Background(), "http://localhost", SnapshotOptions{Width: 0, Height: 630})
	assert.Error(t, err)
}

func TestCaptureSnapshotSmoke(t *testing.T) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("Skipping snapshot test: CHROME_PATH not set")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!DOCTYPE html><html><body style="height:3000px"><h1>Hello World</h1></body></html>`))
	}))
	defer server.Close()

	opts := DefaultSnapshotOptions()
	opts.ChromePath = chromePath
	opts.Settle = 10 * time.Millisecond

	png, err := CaptureSnapshot(context.Background(), server.URL, opts)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skipf("Skipping: Chrome not found at %s", chromePath)
		}
		t.Fatalf("CaptureSnapshot failed: %v", err)
	}

	require.Greater(t, len(png), 8)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestScreenshotParams(t *testing.T) {
	opts := DefaultSnapshotOptions()

	viewport := screenshotParams(opts, 4000)
	assert.Equal(t, page.CaptureScreenshotFormatPng, viewport.Format)
	assert.Nil(t, viewport.Clip)

	opts.FullPage = true
	full := screenshotParams(opts, 4000)
	assert.Equal(t, page.CaptureScreenshotFormatPng, full.Format)
	assert.True(t, full.CaptureBeyondViewport)
	require.NotNil(t, full.Clip)
	assert.Equal(t, float64(4000), full.Clip.Height)
	assert.Equal(t, float64(1200), full.Clip.Width)
}
