package services

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"digital_analytics_site/config"
	"digital_analytics_site/templates/emails"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
	Tags     map[string]string
}

// Mailer sends one email and returns the provider's message id
type Mailer interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// MailerFunc adapts a function to Mailer
type MailerFunc func(ctx context.Context, email *Email) (string, error)

func (f MailerFunc) Send(ctx context.Context, email *Email) (string, error) {
	return f(ctx, email)
}

// NewResendMailer sends through Resend, or logs when EMAIL_TEST_MODE is on
func NewResendMailer(cfg *config.Config, logger *zap.Logger) Mailer {
	return MailerFunc(func(ctx context.Context, email *Email) (string, error) {
		return SendEmail(ctx, cfg, logger, email)
	})
}

// loadTemplate renders templates/emails/<name>.html and <name>.txt
func loadTemplate(name string, data interface{}) (html string, text string, err error) {
	htmlSrc, err := emails.FS.ReadFile(name + ".html")
	if err != nil {
		return "", "", fmt.Errorf("failed to read template %s.html: %w", name, err)
	}
	htmlTmpl, err := htmltemplate.New(name + ".html").Parse(string(htmlSrc))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.html: %w", name, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.html: %w", name, err)
	}

	textSrc, err := emails.FS.ReadFile(name + ".txt")
	if err != nil {
		return "", "", fmt.Errorf("failed to read template %s.txt: %w", name, err)
	}
	textTmpl, err := texttemplate.New(name + ".txt").Parse(string(textSrc))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.txt: %w", name, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.txt: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(ctx context.Context, cfg *config.Config, logger *zap.Logger, email *Email) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(logger, email)
		return "", nil
	}

	if cfg.ResendAPIKey == "" {
		return "", fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}
	for name, value := range email.Tags {
		params.Tags = append(params.Tags, resend.Tag{Name: name, Value: value})
	}

	// Validate we have at least one body
	if params.Html == "" && params.Text == "" {
		return "", fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}

	logger.Info("email sent via Resend", zap.String("resend_id", sent.Id), zap.Strings("to", email.To))
	return sent.Id, nil
}

// logEmailToConsole logs email details in test mode
func logEmailToConsole(logger *zap.Logger, email *Email) {
	logger.Info("email logged (test mode, not sent)",
		zap.Strings("to", email.To),
		zap.String("reply_to", email.ReplyTo),
		zap.String("subject", email.Subject),
		zap.String("text", email.TextBody),
		zap.String("html_preview", truncate(email.HTMLBody, 500)),
	)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// ContactNotificationData contains data for the contact notification template
type ContactNotificationData struct {
	SubmissionID string
	Name         string
	Email        string
	Message      string
	ReceivedAt   string
	SiteURL      string
}

// Paragraphs splits the message on blank lines for the HTML template
func (d ContactNotificationData) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(d.Message, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildContactNotificationEmail creates the email the team receives for a contact submission
func BuildContactNotificationEmail(recipient string, data ContactNotificationData) (*Email, error) {
	htmlBody, textBody, err := loadTemplate("contact_notification", data)
	if err != nil {
		return nil, err
	}
	return &Email{
		To:       []string{recipient},
		ReplyTo:  data.Email,
		Subject:  fmt.Sprintf("New contact request from %s", data.Name),
		HTMLBody: htmlBody,
		TextBody: textBody,
		Tags:     map[string]string{"category": "contact_form"},
	}, nil
}
