package authz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each authorizer round trip. The check is a
// blocking external call on every administrative request; an unbounded
// call risks resource exhaustion when the authorizer is slow.
const DefaultTimeout = 5 * time.Second

// Client is an HTTP Authorizer talking to the external auth server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an authorizer client. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type verifyRequest struct {
	Username   string `json:"username"`
	Token      string `json:"token"`
	Permission string `json:"permission"`
}

// Check posts the caller's session credentials and the required
// permission node to the auth server and maps its response:
// 200 is Allow, 401 is an invalid session, 403 is a missing permission,
// and anything else is an error the caller must surface as internal.
func (c *Client) Check(ctx context.Context, identity, token, permission string) (Decision, error) {
	payload, err := json.Marshal(verifyRequest{
		Username:   identity,
		Token:      token,
		Permission: permission,
	})
	if err != nil {
		return DenyInvalidToken, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/auth/verify_permission",
		bytes.NewReader(payload),
	)
	if err != nil {
		return DenyInvalidToken, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return DenyInvalidToken, fmt.Errorf("authz: authorizer unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return Allow, nil
	case http.StatusUnauthorized:
		return DenyInvalidToken, nil
	case http.StatusForbidden:
		return DenyNoPermission, nil
	default:
		return DenyInvalidToken, fmt.Errorf("authz: unexpected authorizer response %d", resp.StatusCode)
	}
}
