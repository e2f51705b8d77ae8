package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/lif-platforms/mailservice/internal/mail/store"
	"github.com/lif-platforms/mailservice/internal/mail/store/drivers/sqlite"
	"github.com/lif-platforms/mailservice/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var hexSecretRe = regexp.MustCompile(`^[0-9a-f]{32}$`)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestCreateCredential(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CredentialService{Store: st}

	clientID, secret, err := svc.CreateCredential(ctx, "svc-a")
	require.NoError(t, err)
	require.NotEmpty(t, clientID)
	require.Regexp(t, hexSecretRe, secret)

	t.Run("stored hash matches the returned plaintext", func(t *testing.T) {
		cred, err := svc.GetCredential(ctx, clientID)
		require.NoError(t, err)
		require.Equal(t, "svc-a", cred.Name)
		require.Equal(t, clientID, cred.ClientID)

		// The plaintext itself is nowhere in the stored record
		require.NotEqual(t, secret, cred.SecretHash)
		require.NotEqual(t, secret, cred.SecretSalt)

		require.Equal(t, cred.SecretHash, cryptox.HashSecret(secret, cred.SecretSalt))
	})

	t.Run("each credential gets an independent secret and salt", func(t *testing.T) {
		id2, secret2, err := svc.CreateCredential(ctx, "svc-b")
		require.NoError(t, err)
		require.NotEqual(t, clientID, id2)
		require.NotEqual(t, secret, secret2)

		a, err := svc.GetCredential(ctx, clientID)
		require.NoError(t, err)
		b, err := svc.GetCredential(ctx, id2)
		require.NoError(t, err)
		require.NotEqual(t, a.SecretSalt, b.SecretSalt)
	})
}

func TestVerifyCredential(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CredentialService{Store: st}

	clientID, secret, err := svc.CreateCredential(ctx, "svc-a")
	require.NoError(t, err)

	t.Run("accepts the issued secret", func(t *testing.T) {
		cred, err := svc.VerifyCredential(ctx, clientID, secret)
		require.NoError(t, err)
		require.Equal(t, clientID, cred.ClientID)
	})

	t.Run("rejects a wrong secret", func(t *testing.T) {
		_, err := svc.VerifyCredential(ctx, clientID, "00000000000000000000000000000000")
		require.ErrorIs(t, err, ErrInvalidSecret)
	})

	t.Run("unknown id looks like a wrong secret", func(t *testing.T) {
		_, err := svc.VerifyCredential(ctx, "01J0UNKNOWNID0000000000000", secret)
		require.ErrorIs(t, err, ErrInvalidSecret)
	})
}

func TestRemoveCredential(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	creds := &CredentialService{Store: st}
	perms := &PermissionService{Store: st}

	clientID, _, err := creds.CreateCredential(ctx, "svc-a")
	require.NoError(t, err)
	require.NoError(t, perms.Grant(ctx, clientID, []string{domain.PermSendEmail, domain.PermViewWaitlist}))

	require.NoError(t, creds.RemoveCredential(ctx, clientID))

	t.Run("credential is gone", func(t *testing.T) {
		_, err := creds.GetCredential(ctx, clientID)
		require.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("grants are gone with it", func(t *testing.T) {
		nodes, err := st.Permissions().ListPermissions(ctx, clientID)
		require.NoError(t, err)
		require.Empty(t, nodes)
	})

	t.Run("removing again reports not found", func(t *testing.T) {
		err := creds.RemoveCredential(ctx, clientID)
		require.ErrorIs(t, err, ErrCredentialNotFound)
	})
}

// conflictStore wraps a real store but fails the first N credential
// inserts with ErrAlreadyExists, simulating generated-id collisions.
type conflictStore struct {
	store.Store
	creds *conflictCreds
}

func (s *conflictStore) Credentials() store.Credentials { return s.creds }

type conflictCreds struct {
	store.Credentials
	conflicts int
	attempts  []string
}

func (c *conflictCreds) CreateCredential(ctx context.Context, cred domain.Credential) error {
	c.attempts = append(c.attempts, cred.ClientID)
	if c.conflicts > 0 {
		c.conflicts--
		return store.ErrAlreadyExists
	}
	return c.Credentials.CreateCredential(ctx, cred)
}

func TestCreateCredentialRetriesIDCollision(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("retries with a fresh id and succeeds", func(t *testing.T) {
		creds := &conflictCreds{Credentials: st.Credentials(), conflicts: 2}
		svc := &CredentialService{Store: &conflictStore{Store: st, creds: creds}}

		clientID, _, err := svc.CreateCredential(ctx, "svc-a")
		require.NoError(t, err)
		require.Len(t, creds.attempts, 3)
		require.Equal(t, creds.attempts[2], clientID)

		// Each attempt used a different generated id
		require.NotEqual(t, creds.attempts[0], creds.attempts[1])
		require.NotEqual(t, creds.attempts[1], creds.attempts[2])
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		creds := &conflictCreds{Credentials: st.Credentials(), conflicts: createAttempts}
		svc := &CredentialService{Store: &conflictStore{Store: st, creds: creds}}

		_, _, err := svc.CreateCredential(ctx, "svc-b")
		require.Error(t, err)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}
