package http

import (
	"net/http"

	"github.com/lif-platforms/mailservice/internal/mail/authz"
	"github.com/lif-platforms/mailservice/pkg/httpx"
	"github.com/lif-platforms/mailservice/pkg/mailapi"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

// Session credential headers for administrative routes. Both are
// forwarded verbatim to the external authorizer.
const (
	HeaderAuthIdentity = "X-Auth-Identity"
	HeaderAuthToken    = "X-Auth-Token"
)

// requirePermission gates a handler behind the external authorizer. The
// wrapped handler runs only on an explicit Allow; nothing downstream is
// touched on deny or on authorizer failure.
func (rt *Router) requirePermission(node string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			identity := r.Header.Get(HeaderAuthIdentity)
			token := r.Header.Get(HeaderAuthToken)
			if identity == "" || token == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, mailapi.ErrorResponse{
					Error:            "invalid_token",
					ErrorDescription: "Missing session credentials",
				})
				return
			}

			decision, err := rt.authorizer.Check(ctx, identity, token, node)
			if err != nil {
				log.Error("authorization check failed", "error", err, "permission", node)
				httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
					Error:            "server_error",
					ErrorDescription: "Authorization check failed",
				})
				return
			}

			switch decision {
			case authz.Allow:
				next.ServeHTTP(w, r)
			case authz.DenyInvalidToken:
				httpx.WriteJSON(w, http.StatusUnauthorized, mailapi.ErrorResponse{
					Error:            "invalid_token",
					ErrorDescription: "Session token is invalid or expired",
				})
			case authz.DenyNoPermission:
				log.Warn("permission denied", "identity", identity, "permission", node)
				httpx.WriteJSON(w, http.StatusForbidden, mailapi.ErrorResponse{
					Error:            "no_permission",
					ErrorDescription: "Session lacks the required permission",
				})
			}
		})
	}
}
