package handlers

import (
	"digital_analytics_site/config"
	"digital_analytics_site/middleware"
	"digital_analytics_site/models"
	"digital_analytics_site/services"
	"digital_analytics_site/templates/components"
	"digital_analytics_site/templates/pages"
	"digital_analytics_site/templates/partials"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LandingHandler renders the single landing page
func (s *Site) LandingHandler(c echo.Context) error {
	cfg := getConfig(c)
	site := s.Content.Current()
	ctx := c.Request().Context()

	// Without bindings the page still renders, just without entrance animations
	triggers, err := pages.NewSectionTriggers(site)
	if err != nil {
		middleware.Logger(c).Error("failed to bind section animations", zap.Error(err))
		triggers = pages.SectionTriggers{}
	}

	props := pages.LandingProps{
		Site:   site,
		SEO:    LandingSEO(cfg, site),
		Motion: triggers,
		Nonce:  middleware.GetNonce(ctx),
		Form: partials.ContactFormProps{
			State:            services.ContactFormSnapshot{Status: models.StatusIdle},
			CSRFToken:        middleware.GetCSRFToken(c),
			TurnstileSiteKey: turnstileSiteKey(cfg),
		},
		Turnstile: cfg.TurnstileEnabled(),
		Now:       s.now(),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	component := components.Component(pages.Landing(props))
	return component.Render(ctx, c.Response().Writer)
}

// turnstileSiteKey is empty unless both keys are set, so the widget never renders unverified
func turnstileSiteKey(cfg *config.Config) string {
	if !cfg.TurnstileEnabled() {
		return ""
	}
	return cfg.TurnstileSiteKey
}
