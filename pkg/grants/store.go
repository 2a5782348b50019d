package grants

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Store loads explicit permission grants from durable storage.
type Store interface {
	// LoadGrants returns every grant row recorded for the membership.
	// An empty slice is a valid result; infrastructure failures must be
	// reported as (or wrapped in) ErrStoreUnavailable.
	LoadGrants(ctx context.Context, membershipID uuid.UUID) ([]PermissionGrant, error)
}

// Accessor materializes the grant matrix for a membership from a Store.
type Accessor struct {
	store Store
}

// NewAccessor creates an Accessor backed by the given store.
func NewAccessor(store Store) *Accessor {
	if store == nil {
		panic("grants: store cannot be nil")
	}
	return &Accessor{store: store}
}

// Load returns the explicitly recorded grants keyed by module. Modules
// without a recorded row are absent from the map so callers can apply
// role defaults; rows for unknown modules are dropped.
func (a *Accessor) Load(ctx context.Context, membershipID uuid.UUID) (map[Module]ActionSet, error) {
	rows, err := a.store.LoadGrants(ctx, membershipID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		if errors.Is(err, ErrStoreUnavailable) {
			return nil, err
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	out := make(map[Module]ActionSet, len(rows))
	for _, row := range rows {
		if !row.Module.IsValid() {
			continue
		}
		out[row.Module] = row.Actions
	}
	return out, nil
}

// Resolve expands an explicit grant map into a complete matrix covering
// every known module, filling absent modules with the all-false set.
func Resolve(explicit map[Module]ActionSet) map[Module]ActionSet {
	out := make(map[Module]ActionSet, len(Modules()))
	for _, m := range Modules() {
		out[m] = explicit[m]
	}
	return out
}
