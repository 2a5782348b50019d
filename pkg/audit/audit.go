package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome classifies an authorization event.
type Outcome string

const (
	OutcomeAllowed Outcome = "allowed"
	OutcomeDenied  Outcome = "denied"
	// OutcomeBypass marks decisions made through the system-owner escape
	// hatch, which circumvents the permission matrix entirely.
	OutcomeBypass Outcome = "bypass"
)

// Event is a single audit record.
type Event struct {
	ID          string    `json:"id"`
	PrincipalID string    `json:"principal_id"`
	TenantID    string    `json:"tenant_id,omitempty"`
	Action      string    `json:"action"`
	Module      string    `json:"module,omitempty"`
	Outcome     Outcome   `json:"outcome"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks that the event carries the required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	if e.Outcome == "" {
		return fmt.Errorf("%w: outcome is required", ErrEventValidation)
	}
	return nil
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(principalID, tenantID, action, module string, outcome Outcome, detail string) Event {
	return Event{
		ID:          uuid.New().String(),
		PrincipalID: principalID,
		TenantID:    tenantID,
		Action:      action,
		Module:      module,
		Outcome:     outcome,
		Detail:      detail,
		CreatedAt:   time.Now().UTC(),
	}
}
