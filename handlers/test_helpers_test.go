package handlers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"digital_analytics_site/config"
	"digital_analytics_site/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		AppURL:           "https://digitalanalytics.dev",
		ContactRecipient: "team@digitalanalytics.dev",
		EmailFrom:        "noreply@digitalanalytics.dev",
		EmailFromName:    "Digital Analytics",
		EmailTestMode:    true,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	return setupEchoWithConfig(method, path, body, testConfig())
}

func setupEchoWithConfig(method, path string, body io.Reader, cfg *config.Config) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", cfg)

	return e, c, rec
}

// outbox records every email the contact service sends
type outbox struct {
	mu     sync.Mutex
	emails []*services.Email
	err    error
}

func (o *outbox) Send(ctx context.Context, email *services.Email) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return "", o.err
	}
	o.emails = append(o.emails, email)
	return "re_test", nil
}

func (o *outbox) sent() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.emails)
}

var errProviderDown = errors.New("resend: 503 service unavailable")

func newTestSite(t *testing.T, mail *outbox) *Site {
	t.Helper()
	store, err := services.NewContentStore("", nil)
	require.NoError(t, err)

	contacts := services.NewContactService(testConfig(), mail, nil)
	site := NewSite(store, services.NewMailSubmitter(contacts), contacts)
	site.Now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return site
}
