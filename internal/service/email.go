package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional mail via Resend. In development (or
// without an API key) it logs instead of sending, so the sign-in flow
// works locally with codes read from the log.
type EmailService struct {
	client     *resend.Client
	fromEmail  string
	audienceID string
	isDev      bool
	appURL     string
	appName    string
}

func NewEmailService(apiKey, fromEmail, audienceID, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		audienceID: audienceID,
		isDev:      isDev,
		appURL:     appURL,
		appName:    appName,
	}
}

func (s *EmailService) SendLoginCodeEmail(email, code string) error {
	subject, body := loginCodeEmailTemplate(code, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "login_code", "to", email, "subject", subject, "code", code)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "login_code", "to", email)
	}
	return err
}

func (s *EmailService) SendWelcomeEmail(email string) error {
	reviewsURL := fmt.Sprintf("%s/app/reviews", s.appURL)
	subject, body := welcomeEmailTemplate(reviewsURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "welcome", "to", email, "subject", subject, "url", reviewsURL)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "welcome", "to", email)
	}
	return err
}

func (s *EmailService) SendAccountDeletedEmail(email string) error {
	subject, body := accountDeletedEmailTemplate(s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "account_deleted", "to", email, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "account_deleted", "to", email)
	}
	return err
}
