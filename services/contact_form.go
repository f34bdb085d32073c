package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"digital_analytics_site/models"

	"go.uber.org/zap"
)

// User-visible messages of the contact form
const (
	MsgRequiredFields = "Please fill in all required fields."
	MsgAcceptTerms    = "Please accept the terms and conditions."
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgSendFailed     = "Something went wrong. Please try again."
	MsgUnreachable    = "Unable to send your message. Please check your connection and try again."
	MsgSent           = "Thank you! Your message has been sent. We'll get back to you soon."
)

var (
	ErrSubmissionInFlight = errors.New("contact form: submission already in flight")
	ErrUnknownField       = errors.New("contact form: unknown field")
	ErrSubmissionRejected = errors.New("contact form: endpoint rejected submission")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a local validation failure; nothing was sent
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateContactForm runs the local checks in fixed order (required fields,
// terms, email pattern) and returns the first failure
func ValidateContactForm(form models.ContactForm) *ValidationError {
	req := form.Request()
	if missingField(req) {
		return &ValidationError{Message: MsgRequiredFields}
	}
	if !form.TermsAccepted {
		return &ValidationError{Message: MsgAcceptTerms}
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	return nil
}

// ValidateContactRequest checks the transmitted fields; the endpoint applies it again server-side
func ValidateContactRequest(req models.ContactRequest) *ValidationError {
	if missingField(req) {
		return &ValidationError{Message: MsgRequiredFields}
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	return nil
}

func missingField(req models.ContactRequest) bool {
	return strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == ""
}

// ContactSubmitter delivers a contact request to the submission endpoint.
// An error means the endpoint could not be reached; endpoint-side failures
// come back as a response with Success false.
type ContactSubmitter interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactResponse, error)
}

// ContactFormSnapshot is a copy of the controller state for rendering
type ContactFormSnapshot struct {
	Form    models.ContactForm
	Status  models.SubmissionStatus
	Message string
	// Disabled is true while a submission is in flight
	Disabled bool
}

// ContactFormController owns the field state and submission lifecycle of one contact form
type ContactFormController struct {
	submitter ContactSubmitter
	logger    *zap.Logger

	mu         sync.Mutex
	form       models.ContactForm
	status     models.SubmissionStatus
	message    string
	submitting bool
}

func NewContactFormController(submitter ContactSubmitter, logger *zap.Logger) *ContactFormController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactFormController{
		submitter: submitter,
		logger:    logger,
		status:    models.StatusIdle,
	}
}

// UpdateField writes one text field without validating it
func (c *ContactFormController) UpdateField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case models.FieldName:
		c.form.Name = value
	case models.FieldEmail:
		c.form.Email = value
	case models.FieldMessage:
		c.form.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// ToggleTerms records whether the terms checkbox is checked
func (c *ContactFormController) ToggleTerms(accepted bool) {
	c.mu.Lock()
	c.form.TermsAccepted = accepted
	c.mu.Unlock()
}

// Submit validates the form and, if it passes, sends it once. While a
// submission is in flight further calls return ErrSubmissionInFlight and
// leave the state untouched. Failures are final for the attempt; nothing is retried.
func (c *ContactFormController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	c.status = models.StatusIdle
	c.message = ""

	if verr := ValidateContactForm(c.form); verr != nil {
		c.status = models.StatusError
		c.message = verr.Message
		c.mu.Unlock()
		return verr
	}

	c.status = models.StatusSubmitting
	c.submitting = true
	req := c.form.Request()
	c.mu.Unlock()

	resp, err := c.submitter.Submit(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	switch {
	case err != nil:
		c.logger.Warn("contact submission unreachable", zap.Error(err))
		c.status = models.StatusError
		c.message = MsgUnreachable
		return fmt.Errorf("submit contact form: %w", err)
	case resp == nil || !resp.Success:
		c.status = models.StatusError
		c.message = MsgSendFailed
		if resp != nil && resp.Error != "" {
			c.message = resp.Error
		}
		c.logger.Info("contact submission rejected", zap.String("reason", c.message))
		return fmt.Errorf("%w: %s", ErrSubmissionRejected, c.message)
	}

	c.logger.Info("contact submission sent", zap.String("submission_id", resp.ID))
	c.status = models.StatusSuccess
	c.message = MsgSent
	c.form = models.ContactForm{}
	return nil
}

// Snapshot returns a copy of the current state
func (c *ContactFormController) Snapshot() ContactFormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ContactFormSnapshot{
		Form:     c.form,
		Status:   c.status,
		Message:  c.message,
		Disabled: c.submitting,
	}
}
