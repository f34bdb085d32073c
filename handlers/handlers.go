// Package handlers serves the landing page and the contact endpoints
package handlers

import (
	"context"
	"time"

	"digital_analytics_site/config"
	"digital_analytics_site/services"

	"github.com/labstack/echo/v4"
)

// TurnstileVerifier checks a Turnstile token with Cloudflare
type TurnstileVerifier func(ctx context.Context, token, secretKey, ip string) (bool, error)

// Site holds what the handlers need beyond the request
type Site struct {
	Content *services.ContentStore
	// Submitter delivers HTMX form posts; the JSON endpoint always uses Contacts
	Submitter services.ContactSubmitter
	Contacts  *services.ContactService
	Verify    TurnstileVerifier
	Now       func() time.Time
}

func NewSite(content *services.ContentStore, submitter services.ContactSubmitter, contacts *services.ContactService) *Site {
	return &Site{
		Content:   content,
		Submitter: submitter,
		Contacts:  contacts,
		Verify:    services.VerifyTurnstileToken,
		Now:       time.Now,
	}
}

func (s *Site) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// getConfig returns the config set by the server middleware, or an empty one
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}
