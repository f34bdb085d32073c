package jobs

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"digital_analytics_site/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// MockStorage is a mock of services.StorageProvider
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*services.StorageResult, error) {
	data, _ := io.ReadAll(reader)
	args := m.Called(key, contentType, size, string(data))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.StorageResult), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(key).Error(0)
}

func (m *MockStorage) GetPublicURL(key string) string {
	return m.Called(key).String(0)
}

func (m *MockStorage) IsConfigured() bool {
	return m.Called().Bool(0)
}

func fakeCapture(png string, err error) CaptureFunc {
	return func(ctx context.Context, url string, opts services.SnapshotOptions) ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(png), nil
	}
}

func TestSocialImageRefresherRun(t *testing.T) {
	t.Run("uploads the capture", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("IsConfigured").Return(true)
		storage.On("UploadReader", services.SocialImageKey, "image/png", int64(4), "\x89PNG").
			Return(&services.StorageResult{Key: services.SocialImageKey, FileSize: 4, URL: "https://cdn.example.com/og/landing.png"}, nil)

		r := &SocialImageRefresher{
			URL:     "https://digitalanalytics.dev/",
			Key:     services.SocialImageKey,
			Options: services.DefaultSnapshotOptions(),
			Capture: fakeCapture("\x89PNG", nil),
			Storage: storage,
		}
		require.NoError(t, r.Run(context.Background()))
		storage.AssertExpectations(t)
	})

	t.Run("capture failure skips upload", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("IsConfigured").Return(true)

		r := &SocialImageRefresher{Key: services.SocialImageKey, Capture: fakeCapture("", errors.New("chrome not found")), Storage: storage}
		err := r.Run(context.Background())
		assert.ErrorContains(t, err, "chrome not found")
		storage.AssertNotCalled(t, "UploadReader", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload failure is returned", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("IsConfigured").Return(true)
		storage.On("UploadReader", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("403 forbidden"))

		r := &SocialImageRefresher{Key: services.SocialImageKey, Capture: fakeCapture("png", nil), Storage: storage}
		assert.ErrorContains(t, r.Run(context.Background()), "403 forbidden")
	})

	t.Run("unconfigured storage", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("IsConfigured").Return(false)
		r := &SocialImageRefresher{Capture: fakeCapture("png", nil), Storage: storage}
		assert.Error(t, r.Run(context.Background()))
	})
}

func TestRunScheduler(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("rejects bad schedule", func(t *testing.T) {
		err := RunScheduler(context.Background(), "every tuesday", nil, func(context.Context) error { return nil })
		assert.ErrorContains(t, err, "invalid schedule")
	})

	t.Run("runs until canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var runs atomic.Int32
		done := make(chan error, 1)

		go func() {
			done <- RunScheduler(ctx, "@every 1s", nil, func(context.Context) error {
				runs.Add(1)
				return errors.New("logged, not fatal")
			})
		}()

		assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("scheduler did not stop")
		}
	})
}
