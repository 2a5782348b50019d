package membership

import (
	"time"

	"github.com/google/uuid"

	"github.com/tapline/tapline/pkg/hierarchy"
)

// Status is the lifecycle state of a membership.
type Status string

const (
	// StatusActive memberships authenticate and authorize normally.
	StatusActive Status = "active"
	// StatusSuspended memberships are temporarily locked out and may be
	// reactivated.
	StatusSuspended Status = "suspended"
	// StatusInactive is terminal. The row is kept for audit history and
	// never hard-deleted.
	StatusInactive Status = "inactive"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusInactive:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status state machine permits moving
// from s to next: active and suspended flip freely, both may terminate in
// inactive, and inactive is final.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusActive:
		return next == StatusSuspended || next == StatusInactive
	case StatusSuspended:
		return next == StatusActive || next == StatusInactive
	}
	return false
}

// Membership binds one principal to one tenant.
type Membership struct {
	ID          uuid.UUID      `json:"id"`
	TenantID    uuid.UUID      `json:"tenant_id"`
	PrincipalID string         `json:"principal_id"`
	Role        hierarchy.Role `json:"role"`
	Status      Status         `json:"status"`
	// FirstMember is set on the tenant's founding membership and never
	// changes afterwards.
	FirstMember bool      `json:"is_first_member"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Active reports whether the membership may authenticate.
func (m *Membership) Active() bool {
	return m != nil && m.Status == StatusActive
}
