package store

import (
	"context"
	"errors"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction entry point for multi-step mutations that
// must be atomic (cascading credential removal, multi-node grant edits).
type Store interface {
	Credentials() Credentials
	Permissions() Permissions
	Waitlist() Waitlist

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended entry point; it cannot leak an open transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Credentials interface {
	// GetCredential returns the credential for client id, or ErrNotFound.
	GetCredential(ctx context.Context, clientID string) (domain.Credential, error)

	// CreateCredential inserts a new credential. Returns ErrAlreadyExists
	// when the client id is taken; it never silently overwrites.
	CreateCredential(ctx context.Context, c domain.Credential) error

	// DeleteCredential removes the credential row. Permission grants cascade
	// at the schema level; callers that need the cascade to be atomic with
	// other statements should run inside WithTx.
	DeleteCredential(ctx context.Context, clientID string) error
}

type Permissions interface {
	// AddPermission grants a single node. Granting an already-granted node
	// is a no-op, keeping the relation a set.
	AddPermission(ctx context.Context, clientID, node string) error

	// RemovePermission revokes a single node. Removing an absent node is a
	// no-op, not an error.
	RemovePermission(ctx context.Context, clientID, node string) error

	// RemoveAllPermissions revokes every node granted to the client. Used
	// by credential removal so the cascade is explicit in the same
	// transaction rather than relying on the schema alone.
	RemoveAllPermissions(ctx context.Context, clientID string) error

	// ListPermissions returns all nodes granted to the client, sorted.
	ListPermissions(ctx context.Context, clientID string) ([]string, error)
}

type Waitlist interface {
	// AddEmail records a waitlist signup. Duplicate signups are no-ops.
	AddEmail(ctx context.Context, email string) error

	// ListEmails returns all recorded signups, oldest first.
	ListEmails(ctx context.Context) ([]domain.WaitlistEntry, error)
}
