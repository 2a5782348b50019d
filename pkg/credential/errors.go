package credential

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential covers every verification failure: malformed
	// token, bad signature, unexpected algorithm, missing subject.
	ErrInvalidCredential = errors.New("credential: invalid")

	// ErrExpiredCredential is returned for tokens past their expiry.
	// It wraps ErrInvalidCredential so callers matching only the broad
	// sentinel still deny.
	ErrExpiredCredential = fmt.Errorf("credential: expired: %w", ErrInvalidCredential)

	// ErrMissingSigningKey is returned when constructing a Service
	// without a key.
	ErrMissingSigningKey = errors.New("credential: missing signing key")
)
