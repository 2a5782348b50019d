package hierarchy

import "github.com/tapline/tapline/pkg/grants"

// DefaultGrants returns the role-based permission template for every
// module. The returned map is a fresh copy; callers may mutate it.
//
// The table is the narrowest thing that lets each role do its job:
// anything not widened here or by an explicit grant row stays denied.
// ADMIN is denied administer on the membership-management and
// critical-configuration modules so that owner-level operations cannot
// be delegated by accident.
func DefaultGrants(role Role) map[grants.Module]grants.ActionSet {
	out := make(map[grants.Module]grants.ActionSet, len(grants.Modules()))

	switch role {
	case RoleOwner:
		for _, m := range grants.Modules() {
			out[m] = grants.AllActions()
		}
	case RoleAdmin:
		for _, m := range grants.Modules() {
			set := grants.AllActions()
			if m == grants.ModuleMembers || m == grants.ModuleSettings {
				set.Administer = false
			}
			out[m] = set
		}
	case RoleManager:
		out[grants.ModuleInventory] = grants.UpTo(grants.ActionDelete)
		out[grants.ModuleCashSessions] = grants.UpTo(grants.ActionDelete)
		out[grants.ModuleEmployeeRoster] = grants.UpTo(grants.ActionDelete)
		out[grants.ModuleReports] = grants.ReadOnly()
		out[grants.ModuleMembers] = grants.ReadOnly()
		out[grants.ModuleSettings] = grants.ReadOnly()
	case RoleMember:
		out[grants.ModuleInventory] = grants.ReadOnly()
		out[grants.ModuleCashSessions] = grants.UpTo(grants.ActionCreate)
		out[grants.ModuleEmployeeRoster] = grants.ReadOnly()
		out[grants.ModuleReports] = grants.ActionSet{}
		out[grants.ModuleMembers] = grants.ActionSet{}
		out[grants.ModuleSettings] = grants.ActionSet{}
	default:
		// Unknown roles get the empty template: default-deny.
		for _, m := range grants.Modules() {
			out[m] = grants.ActionSet{}
		}
	}

	return out
}
