package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitlistJoin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &WaitlistService{Store: st}

	t.Run("rejects malformed addresses", func(t *testing.T) {
		require.ErrorIs(t, svc.Join(ctx, ""), ErrInvalidEmail)
		require.ErrorIs(t, svc.Join(ctx, "   "), ErrInvalidEmail)
		require.ErrorIs(t, svc.Join(ctx, "not-an-email"), ErrInvalidEmail)
	})

	t.Run("normalizes and records signups", func(t *testing.T) {
		require.NoError(t, svc.Join(ctx, "  Alice@Example.COM "))
		require.NoError(t, svc.Join(ctx, "bob@example.com"))

		entries, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "alice@example.com", entries[0].Email)
		require.Equal(t, "bob@example.com", entries[1].Email)
	})

	t.Run("signing up twice is a silent no-op", func(t *testing.T) {
		require.NoError(t, svc.Join(ctx, "ALICE@example.com"))

		entries, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})
}
