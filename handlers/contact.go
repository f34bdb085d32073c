package handlers

import (
	"errors"
	"net/http"
	"strings"

	"digital_analytics_site/middleware"
	"digital_analytics_site/models"
	"digital_analytics_site/services"
	"digital_analytics_site/templates/components"
	"digital_analytics_site/templates/partials"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgCaptchaRequired = "Please complete the CAPTCHA."
	msgCaptchaFailed   = "CAPTCHA verification failed. Please try again."
	msgInvalidBody     = "Invalid request body."
)

// SubmitContactFormHandler handles the htmx form post and answers with the re-rendered form.
// Every outcome is a 200 so htmx swaps the banner in; the status lives in the markup.
func (s *Site) SubmitContactFormHandler(c echo.Context) error {
	cfg := getConfig(c)
	ctx := c.Request().Context()
	log := middleware.Logger(c)

	ctrl := services.NewContactFormController(s.Submitter, log)
	for _, field := range []string{models.FieldName, models.FieldEmail, models.FieldMessage} {
		if err := ctrl.UpdateField(field, c.FormValue(field)); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
	}
	ctrl.ToggleTerms(c.FormValue(models.FieldTerms) != "")

	props := partials.ContactFormProps{
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: turnstileSiteKey(cfg),
		TermsURL:         s.Content.Current().Contact.TermsURL,
	}

	// Local validation comes first; an invalid form never reaches Cloudflare
	if snap := ctrl.Snapshot(); cfg.TurnstileEnabled() && services.ValidateContactForm(snap.Form) == nil {
		if msg := s.verifyTurnstile(c); msg != "" {
			props.State = services.ContactFormSnapshot{Form: snap.Form, Status: models.StatusError, Message: msg}
			return renderContactForm(c, props)
		}
	}

	if err := ctrl.Submit(ctx); err != nil {
		var verr *services.ValidationError
		if !errors.As(err, &verr) {
			log.Warn("contact form submission failed", zap.Error(err))
		}
	}

	props.State = ctrl.Snapshot()
	return renderContactForm(c, props)
}

// verifyTurnstile returns the message to show when the CAPTCHA does not pass
func (s *Site) verifyTurnstile(c echo.Context) string {
	cfg := getConfig(c)
	token := c.FormValue("cf-turnstile-response")
	if token == "" {
		return msgCaptchaRequired
	}
	ok, err := s.Verify(c.Request().Context(), token, cfg.TurnstileSecretKey, c.RealIP())
	if err != nil || !ok {
		middleware.Logger(c).Warn("turnstile verification failed", zap.Error(err))
		return msgCaptchaFailed
	}
	return ""
}

func renderContactForm(c echo.Context, props partials.ContactFormProps) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	component := components.Component(partials.ContactForm(props))
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// ContactAPIHandler is the JSON submission endpoint.
// 200 on delivery, 400 on invalid input, 502 when the mail provider fails.
func (s *Site) ContactAPIHandler(c echo.Context) error {
	var req models.ContactRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ContactResponse{Error: msgInvalidBody})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	id, err := s.Contacts.Deliver(c.Request().Context(), req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, models.ContactResponse{Error: verr.Message})
		}
		middleware.Logger(c).Error("contact delivery failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, models.ContactResponse{Error: services.PublicContactError(err)})
	}

	return c.JSON(http.StatusOK, models.ContactResponse{Success: true, ID: id})
}
