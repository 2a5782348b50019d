package membership

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no membership exists for a principal
	// or membership id.
	ErrNotFound = errors.New("membership: not found")

	// ErrStoreUnavailable indicates the membership backend could not be
	// reached. Callers must deny, never allow, while it persists.
	ErrStoreUnavailable = errors.New("membership: store unavailable")
)

// InactiveError is returned when a membership exists but its status is
// not active. The status is preserved so callers can tell a suspended
// member from a deactivated one.
type InactiveError struct {
	Status Status
}

func (e *InactiveError) Error() string {
	return fmt.Sprintf("membership: inactive (status=%s)", e.Status)
}

// Is makes errors.Is(err, &InactiveError{}) match regardless of status.
func (e *InactiveError) Is(target error) bool {
	_, ok := target.(*InactiveError)
	return ok
}
