package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

// EmailNotifier sends lead notifications through a transactional email API.
// When no API key or recipient list is configured it becomes a no-op, so a
// local setup can take leads without sending mail.
type EmailNotifier struct {
	apiKey     string
	apiURL     string
	from       string
	recipients []string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func NewEmailNotifier(logger *zap.Logger) *EmailNotifier {
	apiKey := os.Getenv("RESEND_API_KEY")
	from := os.Getenv("LEAD_NOTIFY_FROM")
	if from == "" {
		from = "leads@property-launches.local"
	}

	var recipients []string
	for _, addr := range strings.Split(os.Getenv("LEAD_NOTIFY_EMAILS"), ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}

	return &EmailNotifier{
		apiKey:     apiKey,
		apiURL:     "https://api.resend.com/emails",
		from:       from,
		recipients: recipients,
		enabled:    apiKey != "" && len(recipients) > 0,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

func (n *EmailNotifier) NotifyLead(lead domain.Lead) error {
	if !n.enabled {
		n.logger.Debug("email notifier disabled, skipping lead notification")
		return nil
	}

	body := emailRequest{
		From:    n.from,
		To:      n.recipients,
		Subject: fmt.Sprintf("New lead: %s", lead.Name),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nSource: %s\nReceived: %s\n",
			lead.Name, lead.Email, lead.Phone, lead.Source,
			lead.CreatedAt.Format(time.RFC3339)),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("lead notification returned status %d", resp.StatusCode)
	}
	return nil
}
