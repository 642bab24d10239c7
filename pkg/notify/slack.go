package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const RetrainMessage = "🔔 Alert: Model training/fine tunining is required to improve results!"

// Notifier delivers a one-off text alert. Fire-and-forget: callers log
// the error and move on, there is no retry.
type Notifier interface {
	Notify(message string) error
}

// SlackWebhook posts messages to a Slack incoming webhook URL.
type SlackWebhook struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackWebhook(webhookURL string) *SlackWebhook {
	return &SlackWebhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SlackWebhook) Notify(message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook: status %d", resp.StatusCode)
	}
	return nil
}
