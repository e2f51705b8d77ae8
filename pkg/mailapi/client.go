// Package mailapi provides the request/response types of the mail
// service API and a thin HTTP client for them. The client is used by
// other Lif services and by this repository's own API tests.
package mailapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a running mail service. Identity and Token are the
// caller's session credentials, forwarded on administrative requests and
// verified by the external authorizer.
type Client struct {
	BaseURL    string
	Identity   string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a mail service client bound to a caller session.
func NewClient(baseURL, identity, token string) *Client {
	return &Client{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		Identity: identity,
		Token:    token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a decoded error response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mailapi: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// CreateCredentials issues a new credential and returns the plaintext
// secret, which the server will never disclose again.
func (c *Client) CreateCredentials(ctx context.Context, name string) (CreateCredentialsResponse, error) {
	form := url.Values{"name": {name}}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/admin/create_credentials",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return CreateCredentialsResponse{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setSession(req)

	var out CreateCredentialsResponse
	if err := c.do(req, http.StatusCreated, &out); err != nil {
		return CreateCredentialsResponse{}, err
	}
	return out, nil
}

// GrantPermissions adds permission nodes to a credential.
func (c *Client) GrantPermissions(ctx context.Context, clientID string, nodes []string) error {
	return c.modifyPermissions(ctx, http.MethodPost, clientID, nodes)
}

// RevokePermissions removes permission nodes from a credential.
func (c *Client) RevokePermissions(ctx context.Context, clientID string, nodes []string) error {
	return c.modifyPermissions(ctx, http.MethodDelete, clientID, nodes)
}

func (c *Client) modifyPermissions(ctx context.Context, method, clientID string, nodes []string) error {
	payload, err := json.Marshal(nodes)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.BaseURL+"/admin/modify_permissions/"+url.PathEscape(clientID),
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setSession(req)

	return c.do(req, http.StatusOK, nil)
}

// GetPermissions lists the nodes granted to a credential.
func (c *Client) GetPermissions(ctx context.Context, clientID string) (GetPermissionsResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.BaseURL+"/admin/get_permissions/"+url.PathEscape(clientID),
		nil,
	)
	if err != nil {
		return GetPermissionsResponse{}, err
	}
	c.setSession(req)

	var out GetPermissionsResponse
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return GetPermissionsResponse{}, err
	}
	return out, nil
}

// RemoveCredentials deletes a credential and all its grants.
func (c *Client) RemoveCredentials(ctx context.Context, clientID string) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodDelete,
		c.BaseURL+"/admin/remove_credentials/"+url.PathEscape(clientID),
		nil,
	)
	if err != nil {
		return err
	}
	c.setSession(req)

	return c.do(req, http.StatusOK, nil)
}

// GetWaitlist lists collected waitlist emails.
func (c *Client) GetWaitlist(ctx context.Context) (GetWaitlistResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/admin/get_waitlist", nil)
	if err != nil {
		return GetWaitlistResponse{}, err
	}
	c.setSession(req)

	var out GetWaitlistResponse
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return GetWaitlistResponse{}, err
	}
	return out, nil
}

// JoinWaitlist submits a waitlist signup. It needs no session.
func (c *Client) JoinWaitlist(ctx context.Context, email string) error {
	payload, err := json.Marshal(WaitlistJoinRequest{Email: email})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/waitlist/ringer",
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, http.StatusOK, nil)
}

// SendEmail relays an email, authenticating with an issued credential
// via HTTP Basic auth rather than the caller session.
func (c *Client) SendEmail(ctx context.Context, clientID, clientSecret string, msg SendEmailRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/send_email",
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(clientID, clientSecret)

	return c.do(req, http.StatusOK, nil)
}

func (c *Client) setSession(req *http.Request) {
	req.Header.Set("X-Auth-Identity", c.Identity)
	req.Header.Set("X-Auth-Token", c.Token)
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Error
		apiErr.Description = body.ErrorDescription
	}
	return apiErr
}
