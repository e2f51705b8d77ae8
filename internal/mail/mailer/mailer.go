// Package mailer sends outbound transactional email through a third-party
// provider. The service itself never speaks SMTP; it relays through the
// provider's HTTP API.
package mailer

import "context"

type Mailer interface {
	// Send delivers a single message. A non-nil error means the provider
	// did not accept the message; there are no retries at this layer.
	Send(ctx context.Context, recipient, subject, body string) error
}
