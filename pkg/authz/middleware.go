package authz

import (
	"net/http"
	"strings"

	"github.com/tapline/tapline/pkg/grants"
)

// Require returns middleware that authorizes every request for the given
// module and action before the handler runs, and injects the AuthResult
// into the request context on success. It is the interceptor form of the
// explicit-call pattern; handlers that need finer-grained checks call
// Engine.Authorize directly instead.
//
// Denials respond with the generic user message only: specifics stay in
// the audit trail so other tenants' existence never leaks.
func Require(engine *Engine, module grants.Module, action grants.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer, ok := bearerToken(r)
			if !ok {
				writeDenied(w, deny(ReasonCredentialInvalid, ""))
				return
			}

			res, dec := engine.authorize(r.Context(), bearer, module, action)
			if dec.Denied() {
				writeDenied(w, dec)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthResult(r.Context(), res)))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func writeDenied(w http.ResponseWriter, dec Decision) {
	status := http.StatusForbidden
	switch dec.Reason {
	case ReasonCredentialInvalid, ReasonMembershipNotFound, ReasonMembershipInactive:
		status = http.StatusUnauthorized
	case ReasonStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if dec.Retryable {
		w.Header().Set("Retry-After", "1")
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + dec.UserMessage() + `"}`))
}
