package service

import (
	"context"
	"testing"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/stretchr/testify/require"
)

func TestPermissionGrantRevokeList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	creds := &CredentialService{Store: st}
	perms := &PermissionService{Store: st}

	clientID, _, err := creds.CreateCredential(ctx, "svc-a")
	require.NoError(t, err)

	t.Run("fresh credential has no grants", func(t *testing.T) {
		cred, nodes, err := perms.List(ctx, clientID)
		require.NoError(t, err)
		require.Equal(t, "svc-a", cred.Name)
		require.Empty(t, nodes)
	})

	t.Run("granted nodes show up in the list", func(t *testing.T) {
		err := perms.Grant(ctx, clientID, []string{domain.PermSendEmail, domain.PermViewWaitlist})
		require.NoError(t, err)

		_, nodes, err := perms.List(ctx, clientID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{domain.PermSendEmail, domain.PermViewWaitlist}, nodes)
	})

	t.Run("granting again is a no-op", func(t *testing.T) {
		err := perms.Grant(ctx, clientID, []string{domain.PermSendEmail})
		require.NoError(t, err)

		_, nodes, err := perms.List(ctx, clientID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{domain.PermSendEmail, domain.PermViewWaitlist}, nodes)
	})

	t.Run("revoke removes only the named nodes", func(t *testing.T) {
		err := perms.Revoke(ctx, clientID, []string{domain.PermSendEmail})
		require.NoError(t, err)

		_, nodes, err := perms.List(ctx, clientID)
		require.NoError(t, err)
		require.Equal(t, []string{domain.PermViewWaitlist}, nodes)
	})

	t.Run("revoking an absent node is a no-op", func(t *testing.T) {
		err := perms.Revoke(ctx, clientID, []string{domain.PermSendEmail, domain.PermViewWaitlist})
		require.NoError(t, err)

		_, nodes, err := perms.List(ctx, clientID)
		require.NoError(t, err)
		require.Empty(t, nodes)
	})
}

func TestPermissionUnknownCredential(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	perms := &PermissionService{Store: st}

	const unknown = "01J0UNKNOWNID0000000000000"

	err := perms.Grant(ctx, unknown, []string{domain.PermSendEmail})
	require.ErrorIs(t, err, ErrCredentialNotFound)

	err = perms.Revoke(ctx, unknown, []string{domain.PermSendEmail})
	require.ErrorIs(t, err, ErrCredentialNotFound)

	_, _, err = perms.List(ctx, unknown)
	require.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestPermissionHas(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	creds := &CredentialService{Store: st}
	perms := &PermissionService{Store: st}

	clientID, _, err := creds.CreateCredential(ctx, "svc-a")
	require.NoError(t, err)
	require.NoError(t, perms.Grant(ctx, clientID, []string{domain.PermSendEmail}))

	ok, err := perms.Has(ctx, clientID, domain.PermSendEmail)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = perms.Has(ctx, clientID, domain.PermViewWaitlist)
	require.NoError(t, err)
	require.False(t, ok)
}
