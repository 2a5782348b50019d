package authz

import "context"

type contextKey struct{ name string }

var authResultKey = contextKey{"auth_result"}

// WithAuthResult stores the authentication result in the context.
// The middleware does this so handlers never re-verify the credential.
func WithAuthResult(ctx context.Context, res AuthResult) context.Context {
	return context.WithValue(ctx, authResultKey, res)
}

// AuthResultFromContext retrieves the authentication result placed by
// the middleware, if any.
func AuthResultFromContext(ctx context.Context) (AuthResult, bool) {
	res, ok := ctx.Value(authResultKey).(AuthResult)
	return res, ok
}
