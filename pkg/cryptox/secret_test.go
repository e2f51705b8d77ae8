package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	a, err := GenerateSecret()
	require.NoError(t, err)
	b, err := GenerateSecret()
	require.NoError(t, err)

	require.Len(t, a, SecretSize*2) // 32 hex characters
	require.NotEqual(t, a, b)

	_, err = hex.DecodeString(a)
	require.NoError(t, err)
}

func TestHashAndVerifySecret(t *testing.T) {
	t.Parallel()

	secret, err := GenerateSecret()
	require.NoError(t, err)
	salt, err := GenerateSecret()
	require.NoError(t, err)

	hash := HashSecret(secret, salt)
	require.NotEmpty(t, hash)
	require.NotContains(t, hash, secret)

	t.Run("accepts the original secret", func(t *testing.T) {
		require.True(t, VerifySecret(secret, salt, hash))
	})

	t.Run("rejects a different secret", func(t *testing.T) {
		require.False(t, VerifySecret("00000000000000000000000000000000", salt, hash))
	})

	t.Run("rejects the right secret with the wrong salt", func(t *testing.T) {
		otherSalt, err := GenerateSecret()
		require.NoError(t, err)
		require.False(t, VerifySecret(secret, otherSalt, hash))
	})

	t.Run("rejects malformed stored hashes", func(t *testing.T) {
		require.False(t, VerifySecret(secret, salt, "%%not-base64%%"))
	})
}

func TestHashSecretIsDeterministicPerSalt(t *testing.T) {
	t.Parallel()

	require.Equal(t, HashSecret("s", "salt"), HashSecret("s", "salt"))
	require.NotEqual(t, HashSecret("s", "salt-a"), HashSecret("s", "salt-b"))
}
