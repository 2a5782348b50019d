package membership

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Store loads membership records from durable storage.
type Store interface {
	// FindByPrincipal returns the principal's current membership record
	// regardless of status, so callers can distinguish a suspended
	// membership from a missing one. Returns ErrNotFound when the
	// principal never joined a tenant.
	FindByPrincipal(ctx context.Context, principalID string) (*Membership, error)

	// FindByID returns the membership with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Membership, error)
}

// Resolver maps a verified principal id to its active membership.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store Store) *Resolver {
	if store == nil {
		panic("membership: store cannot be nil")
	}
	return &Resolver{store: store}
}

// Resolve returns the active membership for the principal. It is
// read-only and preserves the not-found vs inactive distinction:
// ErrNotFound when no record exists, *InactiveError when a record exists
// with a non-active status, ErrStoreUnavailable on backend failure.
func (r *Resolver) Resolve(ctx context.Context, principalID string) (*Membership, error) {
	m, err := r.store.FindByPrincipal(ctx, principalID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, err
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return nil, errors.Join(ErrStoreUnavailable, err)
		case errors.Is(err, ErrStoreUnavailable):
			return nil, err
		default:
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
	}
	if !m.Active() {
		return nil, &InactiveError{Status: m.Status}
	}
	return m, nil
}

// Lookup returns the membership with the given id regardless of status.
// Used by membership-management code applying hierarchy rules to targets.
func (r *Resolver) Lookup(ctx context.Context, id uuid.UUID) (*Membership, error) {
	m, err := r.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return m, nil
}
