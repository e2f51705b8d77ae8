package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// The provider requires a display name per recipient; we don't collect
// one, so every recipient gets the platform name.
const recipientDisplayName = "Lif Platforms"

// Nylas relays email through the Nylas send API using an account access
// token. It implements Mailer.
type Nylas struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

// NewNylas returns a Nylas mailer with a bounded request timeout.
func NewNylas(baseURL, accessToken string) *Nylas {
	return &Nylas{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type nylasRecipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type nylasSendRequest struct {
	To      []nylasRecipient `json:"to"`
	Subject string           `json:"subject"`
	Body    string           `json:"body"`
}

func (n *Nylas) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(nylasSendRequest{
		To:      []nylasRecipient{{Name: recipientDisplayName, Email: recipient}},
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.BaseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.AccessToken)

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the log line, never the caller
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("mailer: provider returned %d: %s", resp.StatusCode, snippet)
	}

	return nil
}
