package service

import (
	"context"
	"errors"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/lif-platforms/mailservice/internal/mail/mailer"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

// ErrSendNotPermitted means the credential authenticated fine but does
// not hold the send permission node.
var ErrSendNotPermitted = errors.New("credential lacks send permission")

// RelayService relays outbound email for authenticated service clients.
type RelayService struct {
	Credentials *CredentialService
	Permissions *PermissionService
	Mailer      mailer.Mailer
}

// Send authenticates the presented client credential, checks its send
// grant, and relays the message through the provider. No store state is
// touched beyond the credential lookup.
func (s *RelayService) Send(
	ctx context.Context,
	clientID, clientSecret string,
	recipient, subject, body string,
) error {
	l := slogx.FromContext(ctx)

	cred, err := s.Credentials.VerifyCredential(ctx, clientID, clientSecret)
	if err != nil {
		return err
	}

	ok, err := s.Permissions.Has(ctx, cred.ClientID, domain.PermSendEmail)
	if err != nil {
		return err
	}
	if !ok {
		l.Warn("send refused, permission not granted", "client_id", cred.ClientID)
		return ErrSendNotPermitted
	}

	if err := s.Mailer.Send(ctx, recipient, subject, body); err != nil {
		l.Error("provider send failed", "error", err, "client_id", cred.ClientID)
		return err
	}

	l.Info("email relayed", "client_id", cred.ClientID, "recipient", recipient)
	return nil
}
