package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/nohithkv/portfolio-backend/config"
	"github.com/nohithkv/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner when a visitor submits the contact
// form. It stays disabled unless all three Resend keys are configured, so a
// bare local run simply skips notification.
//
// Required environment variables:
//   - RESEND_API_KEY: Resend API key
//   - RESEND_FROM_EMAIL: sender address (e.g. "Portfolio <noreply@example.com>")
//   - CONTACT_NOTIFY_EMAIL: recipient address
type ContactNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewContactNotifier(cfg map[string]string) *ContactNotifier {
	return &ContactNotifier{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		toEmail:   config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the notifier has everything it needs to send.
func (n *ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.fromEmail != "" && n.toEmail != ""
}

// Notify sends the notification email for one submission.
func (n *ContactNotifier) Notify(msg models.ContactMessage) error {
	if !n.Enabled() {
		return fmt.Errorf("contact notifier is not configured")
	}

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: fmt.Sprintf("New contact from %s", msg.Name),
		Html: fmt.Sprintf(
			"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p>%s</p>",
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Message),
		),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr ResendErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	log.Debug().Str("email", n.toEmail).Msg("Sent contact notification")
	return nil
}
