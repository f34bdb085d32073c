package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"digital_analytics_site/config"
	"digital_analytics_site/models"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// MsgDeliveryFailed is returned to visitors when the mail provider fails
const MsgDeliveryFailed = "We couldn't send your message right now. Please try again later."

// ContactService turns contact requests into notification emails
type ContactService struct {
	cfg    *config.Config
	mailer Mailer
	logger *zap.Logger
	policy *bluemonday.Policy
	now    func() time.Time
}

func NewContactService(cfg *config.Config, mailer Mailer, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		cfg:    cfg,
		mailer: mailer,
		logger: logger,
		policy: bluemonday.StrictPolicy(),
		now:    time.Now,
	}
}

// Deliver validates the request and emails it to the team. It returns the submission id.
func (s *ContactService) Deliver(ctx context.Context, req models.ContactRequest) (string, error) {
	// Validate what will be sent: markup-only fields are empty once stripped
	clean := models.ContactRequest{
		Name:    s.plainText(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: s.plainText(req.Message),
	}
	if verr := ValidateContactRequest(clean); verr != nil {
		return "", verr
	}

	id := uuid.NewString()
	log := s.logger.With(zap.String("submission_id", id))

	data := ContactNotificationData{
		SubmissionID: id,
		Name:         clean.Name,
		Email:        clean.Email,
		Message:      clean.Message,
		ReceivedAt:   s.now().UTC().Format(time.RFC1123),
		SiteURL:      s.cfg.AppURL,
	}

	email, err := BuildContactNotificationEmail(s.cfg.ContactRecipient, data)
	if err != nil {
		log.Error("failed to build contact email", zap.Error(err))
		return "", fmt.Errorf("build contact email: %w", err)
	}

	providerID, err := s.mailer.Send(ctx, email)
	if err != nil {
		log.Error("failed to deliver contact email", zap.Error(err))
		return "", fmt.Errorf("deliver contact %s: %w", id, err)
	}

	log.Info("contact email delivered", zap.String("provider_id", providerID))
	return id, nil
}

// plainText strips markup so the templates only ever see text
func (s *ContactService) plainText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// PublicContactError maps a Deliver error to the message shown to visitors
func PublicContactError(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return MsgDeliveryFailed
}
