package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"digital_analytics_site/config"
	"digital_analytics_site/handlers"
	"digital_analytics_site/middleware"
	"digital_analytics_site/services"
	"digital_analytics_site/services/motion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopMailer struct{ sent int }

func (m *nopMailer) Send(ctx context.Context, email *services.Email) (string, error) {
	m.sent++
	return "re_test", nil
}

func newTestServer(t *testing.T) (*httptest.Server, *nopMailer) {
	t.Helper()
	motion.Init()

	cfg := &config.Config{
		Environment:      "test",
		AppURL:           "https://digitalanalytics.dev",
		ContactRecipient: "team@digitalanalytics.dev",
		StaticDir:        t.TempDir(),
		R2PublicURL:      "https://assets.digitalanalytics.dev",
	}
	content, err := services.NewContentStore("", nil)
	require.NoError(t, err)

	mail := &nopMailer{}
	contacts := services.NewContactService(cfg, mail, nil)
	site := handlers.NewSite(content, services.NewMailSubmitter(contacts), contacts)

	limiter := middleware.NewContactRateLimiter()
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(newServer(cfg, zap.NewNop(), site, limiter))
	t.Cleanup(srv.Close)
	return srv, mail
}

var csrfInput = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

func TestServerLandingAndContactForm(t *testing.T) {
	srv, mail := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	csp := resp.Header.Get("Content-Security-Policy")
	assert.Contains(t, csp, "https://images.unsplash.com")
	assert.Contains(t, csp, "https://assets.digitalanalytics.dev")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var page strings.Builder
	_, err = io.Copy(&page, resp.Body)
	require.NoError(t, err)
	m := csrfInput.FindStringSubmatch(page.String())
	require.Len(t, m, 2, "landing page carries a CSRF token")

	var cookies []*http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "_csrf" {
			cookies = append(cookies, c)
		}
	}
	require.NotEmpty(t, cookies)

	post := func(token string) *http.Response {
		form := url.Values{
			"_csrf":   {token},
			"name":    {"Ada"},
			"email":   {"ada@example.com"},
			"message": {"Hello"},
			"terms":   {"on"},
		}
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/contact", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	bad := post("forged")
	bad.Body.Close()
	assert.NotEqual(t, http.StatusOK, bad.StatusCode)
	assert.Zero(t, mail.sent)

	ok := post(m[1])
	defer ok.Body.Close()
	assert.Equal(t, http.StatusOK, ok.StatusCode)
	assert.Equal(t, 1, mail.sent)
}

func TestServerContactAPIRateLimit(t *testing.T) {
	srv, mail := newTestServer(t)

	codes := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		resp, err := http.Post(srv.URL+"/api/contact", "application/json",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{200, 200, 200, 200, 200, 429}, codes)
	assert.Equal(t, 5, mail.sent)
}

func TestServerMetaRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for path, want := range map[string]string{
		"/robots.txt":  "Sitemap: https://digitalanalytics.dev/sitemap.xml",
		"/sitemap.xml": "<loc>https://digitalanalytics.dev/</loc>",
		"/healthz":     `"status":"ok"`,
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		var body strings.Builder
		_, err = io.Copy(&body, resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, body.String(), want, path)
	}
}
