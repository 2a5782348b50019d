package grants

import "errors"

var (
	// ErrStoreUnavailable indicates the grant backend could not be reached.
	// Callers must treat it as deny-with-retry, never as an implicit grant.
	ErrStoreUnavailable = errors.New("grants: store unavailable")

	// ErrInvalidModule is returned when a grant references an unknown module.
	ErrInvalidModule = errors.New("grants: invalid module")
)
