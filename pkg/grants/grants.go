package grants

import "github.com/google/uuid"

// Module is a named functional area subject to independent permission grants.
// The set is fixed at build time; unknown modules always resolve to deny.
type Module string

const (
	ModuleInventory      Module = "inventory"
	ModuleCashSessions   Module = "cash_sessions"
	ModuleEmployeeRoster Module = "employee_roster"
	ModuleReports        Module = "reports"
	// ModuleMembers covers membership management: inviting, suspending,
	// and changing roles of other memberships.
	ModuleMembers Module = "members"
	// ModuleSettings covers critical tenant configuration.
	ModuleSettings Module = "settings"
)

// Modules returns the fixed set of known modules in a stable order.
func Modules() []Module {
	return []Module{
		ModuleInventory,
		ModuleCashSessions,
		ModuleEmployeeRoster,
		ModuleReports,
		ModuleMembers,
		ModuleSettings,
	}
}

// IsValid reports whether m is one of the known modules.
func (m Module) IsValid() bool {
	switch m {
	case ModuleInventory, ModuleCashSessions, ModuleEmployeeRoster,
		ModuleReports, ModuleMembers, ModuleSettings:
		return true
	}
	return false
}

// Action is one of the five independent permission bits.
type Action string

const (
	ActionView       Action = "view"
	ActionCreate     Action = "create"
	ActionEdit       Action = "edit"
	ActionDelete     Action = "delete"
	ActionAdminister Action = "administer"
)

// Actions returns all actions ordered from narrowest to widest.
func Actions() []Action {
	return []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionAdminister}
}

// IsValid reports whether a is one of the known actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionCreate, ActionEdit, ActionDelete, ActionAdminister:
		return true
	}
	return false
}

// ActionSet is the five-bit permission vector for one module.
// The zero value denies everything.
type ActionSet struct {
	View       bool `json:"view"`
	Create     bool `json:"create"`
	Edit       bool `json:"edit"`
	Delete     bool `json:"delete"`
	Administer bool `json:"administer"`
}

// Allows reports whether the set grants the given action.
// Unknown actions are denied.
func (s ActionSet) Allows(a Action) bool {
	switch a {
	case ActionView:
		return s.View
	case ActionCreate:
		return s.Create
	case ActionEdit:
		return s.Edit
	case ActionDelete:
		return s.Delete
	case ActionAdminister:
		return s.Administer
	}
	return false
}

// IsZero reports whether the set denies every action.
func (s ActionSet) IsZero() bool {
	return s == ActionSet{}
}

// AllActions returns a set granting every action.
func AllActions() ActionSet {
	return ActionSet{View: true, Create: true, Edit: true, Delete: true, Administer: true}
}

// ReadOnly returns a set granting only view.
func ReadOnly() ActionSet {
	return ActionSet{View: true}
}

// UpTo returns a set granting every action up to and including a in the
// view < create < edit < delete < administer chain. Used by role default
// tables, which follow the implication chain even though stored grants
// are free to violate it.
func UpTo(a Action) ActionSet {
	switch a {
	case ActionView:
		return ActionSet{View: true}
	case ActionCreate:
		return ActionSet{View: true, Create: true}
	case ActionEdit:
		return ActionSet{View: true, Create: true, Edit: true}
	case ActionDelete:
		return ActionSet{View: true, Create: true, Edit: true, Delete: true}
	case ActionAdminister:
		return AllActions()
	}
	return ActionSet{}
}

// PermissionGrant binds one membership to an explicit ActionSet for one
// module. A grant row, when present, fully overrides the membership's
// role default for that module.
type PermissionGrant struct {
	MembershipID uuid.UUID `json:"membership_id"`
	Module       Module    `json:"module"`
	Actions      ActionSet `json:"actions"`
}
