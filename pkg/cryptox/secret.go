package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (OWASP minimum recommendation).
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the derived hash in bytes
)

// SecretSize is the byte length of generated secrets and salts, giving
// 128 bits of entropy (32 hex characters once encoded).
const SecretSize = 16

// GenerateSecret creates a cryptographically secure random value of
// SecretSize bytes, returned hex-encoded. Used for both client secrets
// and per-credential salts.
func GenerateSecret() (string, error) {
	buf := make([]byte, SecretSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashSecret derives an Argon2id hash of the secret keyed by the given
// per-credential salt. The salt is stored alongside the hash, so the
// parameters here must only change together with a migration of stored
// credentials.
func HashSecret(secret, salt string) string {
	key := argon2.IDKey([]byte(secret), []byte(salt), iterations, memory, parallelism, keyLength)
	return base64.RawURLEncoding.EncodeToString(key)
}

// VerifySecret re-derives the hash of a presented secret with the stored
// salt and compares it against the stored hash in constant time.
func VerifySecret(secret, salt, storedHash string) bool {
	expected, err := base64.RawURLEncoding.DecodeString(storedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(secret), []byte(salt), iterations, memory, parallelism, keyLength)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
