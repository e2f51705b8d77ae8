// Package authz delegates authorization decisions to the external Lif
// auth server. The mail service never validates session tokens itself;
// every administrative request is re-verified against the authorizer
// with the specific permission node that operation requires.
package authz

import "context"

// Decision is the mapped outcome of an authorization check.
type Decision int

const (
	// Allow means the session is valid and holds the required permission.
	Allow Decision = iota
	// DenyInvalidToken means the authorizer rejected the session itself.
	DenyInvalidToken
	// DenyNoPermission means the session is valid but lacks the permission.
	DenyNoPermission
)

// Authorizer answers whether a caller session holds a permission node.
// A non-nil error means the check could not be completed (authorizer
// unreachable, timeout, unexpected response) and the caller must treat
// the request as failed, never as allowed.
type Authorizer interface {
	Check(ctx context.Context, identity, token, permission string) (Decision, error)
}
