package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/lif-platforms/mailservice/internal/mail/store"
	"github.com/lif-platforms/mailservice/pkg/cryptox"
	"github.com/lif-platforms/mailservice/pkg/idx"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrInvalidSecret      = errors.New("invalid client credentials")
)

// createAttempts bounds the retry loop on generated-id collisions. A
// collision is not caller-actionable, so it is retried with a fresh id
// instead of surfaced.
const createAttempts = 3

type CredentialService struct {
	Store store.Store
}

// CreateCredential issues a new API credential: a generated client id, a
// 128-bit client secret returned to the caller exactly once, and the
// salted hash persisted in its place.
func (s *CredentialService) CreateCredential(
	ctx context.Context,
	name string,
) (clientID string, plaintextSecret string, err error) {
	l := slogx.FromContext(ctx)

	plaintextSecret, err = cryptox.GenerateSecret()
	if err != nil {
		l.Error("failed to generate client secret", "error", err)
		return "", "", err
	}

	salt, err := cryptox.GenerateSecret()
	if err != nil {
		l.Error("failed to generate secret salt", "error", err)
		return "", "", err
	}

	cred := domain.Credential{
		Name:       name,
		SecretHash: cryptox.HashSecret(plaintextSecret, salt),
		SecretSalt: salt,
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		cred.ClientID = idx.New().String()

		err = s.Store.Credentials().CreateCredential(ctx, cred)
		if err == nil {
			l.Info("credential created", "client_id", cred.ClientID, "name", name)
			return cred.ClientID, plaintextSecret, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			l.Error("failed to create credential", "error", err)
			return "", "", err
		}

		l.Warn("client id collision, retrying", "client_id", cred.ClientID, "attempt", attempt+1)
	}

	return "", "", fmt.Errorf("client id collision persisted after %d attempts: %w", createAttempts, err)
}

// GetCredential returns the stored credential for a client id.
func (s *CredentialService) GetCredential(ctx context.Context, clientID string) (domain.Credential, error) {
	cred, err := s.Store.Credentials().GetCredential(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Credential{}, ErrCredentialNotFound
		}
		return domain.Credential{}, err
	}
	return cred, nil
}

// RemoveCredential deletes a credential and all its permission grants in a
// single transaction, so no partial-delete state is observable.
func (s *CredentialService) RemoveCredential(ctx context.Context, clientID string) error {
	l := slogx.FromContext(ctx)

	if _, err := s.GetCredential(ctx, clientID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Permissions().RemoveAllPermissions(ctx, clientID); err != nil {
			return err
		}
		return tx.Credentials().DeleteCredential(ctx, clientID)
	})
	if err != nil {
		l.Error("failed to remove credential", "error", err, "client_id", clientID)
		return err
	}

	l.Info("credential removed", "client_id", clientID)
	return nil
}

// VerifyCredential checks a presented client id + secret pair by
// re-hashing the secret with the stored salt. An unknown client id and a
// wrong secret are indistinguishable to the caller.
func (s *CredentialService) VerifyCredential(
	ctx context.Context,
	clientID, secret string,
) (domain.Credential, error) {
	cred, err := s.Store.Credentials().GetCredential(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Credential{}, ErrInvalidSecret
		}
		return domain.Credential{}, err
	}

	if !cryptox.VerifySecret(secret, cred.SecretSalt, cred.SecretHash) {
		return domain.Credential{}, ErrInvalidSecret
	}

	return cred, nil
}
