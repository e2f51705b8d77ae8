package mailapi

// ErrorResponse is the error body returned by every endpoint. Messages
// are short and never include internal detail.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// CreateCredentialsResponse carries the one and only disclosure of the
// plaintext client secret.
type CreateCredentialsResponse struct {
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type GetPermissionsResponse struct {
	Name        string   `json:"name"`
	ClientID    string   `json:"client_id"`
	Permissions []string `json:"permissions"`
}

type WaitlistJoinRequest struct {
	Email string `json:"email"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type GetWaitlistResponse struct {
	Emails []string `json:"emails"`
}

type SendEmailRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
