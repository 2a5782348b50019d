package credential

import "context"

// Identity is the result of verifying a bearer credential: a stable
// principal id plus whatever claims the identity provider attached.
type Identity struct {
	PrincipalID string
	Claims      map[string]any
}

// Verifier validates a bearer credential and yields the caller's
// identity. Implementations must return ErrInvalidCredential (possibly
// wrapped) for any token that fails verification, and must never treat
// an unverifiable token as a valid one.
type Verifier interface {
	Verify(ctx context.Context, bearer string) (Identity, error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, bearer string) (Identity, error)

// Verify calls the function.
func (f VerifierFunc) Verify(ctx context.Context, bearer string) (Identity, error) {
	return f(ctx, bearer)
}
