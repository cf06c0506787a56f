package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends templated email through the Resend API. The platform only
// needs "send templated email to address"; delivery is Resend's problem.
type Mailer struct {
	apiKey    string
	fromEmail string
	siteURL   string
	client    *http.Client
	logger    zerolog.Logger
}

func NewMailer(apiKey, fromEmail, siteURL string) *Mailer {
	return &Mailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		siteURL:   siteURL,
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    log.With().Str("service", "mailer").Logger(),
	}
}

// Send delivers a single email to the given recipients.
func (m *Mailer) Send(subject, htmlBody string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if m.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}

	payload := resendEmailRequest{
		From:    m.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    htmlBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var resendErr resendErrorResponse
		if err := json.Unmarshal(body, &resendErr); err == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	m.logger.Info().Strs("recipients", recipients).Str("subject", subject).Msg("Email sent")
	return nil
}

// SendSubscriptionConfirmation confirms a new subscription and includes the
// unsubscribe link for the token that was generated at signup.
func (m *Mailer) SendSubscriptionConfirmation(email string, unsubscribeToken uuid.UUID) error {
	unsubscribeURL := fmt.Sprintf("%s/unsubscribe/%s", m.siteURL, unsubscribeToken)
	body := fmt.Sprintf(
		`<p>You are now subscribed to new article updates.</p>
<p>If this wasn't you, or you change your mind, you can <a href="%s">unsubscribe</a> at any time.</p>`,
		unsubscribeURL,
	)
	return m.Send("Subscription confirmed", body, []string{email})
}
