package domain

import "time"

// Credential is an issued API credential. The plaintext secret is never
// persisted; only the salted Argon2id hash and the salt it was derived
// with are stored, so verification re-hashes a presented secret with
// SecretSalt and compares against SecretHash.
type Credential struct {
	ClientID   string
	Name       string
	SecretHash string
	SecretSalt string
	CreatedAt  time.Time
}
