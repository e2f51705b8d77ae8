package service

import (
	"context"
	"testing"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	recipient, subject, body string
}

func (m *recordingMailer) Send(_ context.Context, recipient, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{recipient, subject, body})
	return nil
}

func TestRelaySend(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	creds := &CredentialService{Store: st}
	perms := &PermissionService{Store: st}
	mail := &recordingMailer{}
	relay := &RelayService{Credentials: creds, Permissions: perms, Mailer: mail}

	clientID, secret, err := creds.CreateCredential(ctx, "svc-a")
	require.NoError(t, err)

	t.Run("refused without the send grant", func(t *testing.T) {
		err := relay.Send(ctx, clientID, secret, "user@example.com", "hi", "body")
		require.ErrorIs(t, err, ErrSendNotPermitted)
		require.Empty(t, mail.sent)
	})

	require.NoError(t, perms.Grant(ctx, clientID, []string{domain.PermSendEmail}))

	t.Run("refused with a wrong secret", func(t *testing.T) {
		err := relay.Send(ctx, clientID, "00000000000000000000000000000000", "user@example.com", "hi", "body")
		require.ErrorIs(t, err, ErrInvalidSecret)
		require.Empty(t, mail.sent)
	})

	t.Run("relays with a valid credential and grant", func(t *testing.T) {
		err := relay.Send(ctx, clientID, secret, "user@example.com", "hi", "body")
		require.NoError(t, err)
		require.Equal(t, []sentMail{{"user@example.com", "hi", "body"}}, mail.sent)
	})
}
