// Package notify delivers scheduled messages to a webhook endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/senryaku/internal/ports/secondary"
)

// WebhookNotifier implements secondary.Notifier over HTTP. The payload
// shape depends on the configured kind:
//
//	ntfy     - plain-text body with a Title header
//	telegram - JSON {"text": ..., "parse_mode": "Markdown"}
//	generic  - JSON {"title": ..., "message": ..., "source": "senryaku"}
type WebhookNotifier struct {
	url    string
	kind   string
	client *http.Client
}

// NewWebhookNotifier creates a notifier for the given endpoint and kind.
func NewWebhookNotifier(url, kind string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		kind:   kind,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one message. A non-2xx response is an error.
func (n *WebhookNotifier) Send(ctx context.Context, title, message string) error {
	if n.url == "" {
		return fmt.Errorf("no webhook URL configured")
	}

	req, err := n.buildRequest(ctx, title, message)
	if err != nil {
		return err
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *WebhookNotifier) buildRequest(ctx context.Context, title, message string) (*http.Request, error) {
	switch n.kind {
	case "ntfy":
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBufferString(message))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Title", title)
		return req, nil

	case "telegram":
		payload, err := json.Marshal(map[string]string{
			"text":       fmt.Sprintf("*%s*\n\n%s", title, message),
			"parse_mode": "Markdown",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		return jsonRequest(ctx, n.url, payload)

	case "generic":
		payload, err := json.Marshal(map[string]string{
			"title":   title,
			"message": message,
			"source":  "senryaku",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		return jsonRequest(ctx, n.url, payload)
	}

	return nil, fmt.Errorf("unknown webhook kind %q", n.kind)
}

func jsonRequest(ctx context.Context, url string, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Ensure WebhookNotifier implements the interface
var _ secondary.Notifier = (*WebhookNotifier)(nil)
