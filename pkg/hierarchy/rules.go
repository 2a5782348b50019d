package hierarchy

// CanView reports whether an actor may see a target membership's details.
// Viewing down or sideways is always allowed; viewing up requires the
// administer bit on the membership-management module, which the caller
// resolves from the actor's grant matrix and passes in so this function
// stays free of I/O.
func CanView(actor, target Role, actorAdministersMembers bool) bool {
	if actor.AtLeast(target) {
		return true
	}
	return actorAdministersMembers
}

// CanEditRole reports whether an actor may change a target membership's
// role from current to next. OWNER may act on any membership, including
// other owners; everyone else must strictly outrank both the current and
// the new role, which also makes promotion to OWNER owner-only.
func CanEditRole(actor, current, next Role) bool {
	if !actor.IsValid() || !current.IsValid() || !next.IsValid() {
		return false
	}
	if actor == RoleOwner {
		return true
	}
	return actor.Outranks(current) && actor.Outranks(next)
}

// CanDeprovision reports whether an actor may suspend or deactivate a
// target membership. Removing an OWNER is owner-only; otherwise the actor
// must strictly outrank the target.
func CanDeprovision(actor, target Role) bool {
	if !actor.IsValid() || !target.IsValid() {
		return false
	}
	if actor == RoleOwner {
		return true
	}
	if target == RoleOwner {
		return false
	}
	return actor.Outranks(target)
}

// BootstrapRole returns the role assigned to a newly created membership.
// The first member of a tenant becomes OWNER; later members get the
// tenant's configured default role, or MEMBER when none is configured.
func BootstrapRole(firstMember bool, tenantDefault Role) Role {
	if firstMember {
		return RoleOwner
	}
	if tenantDefault.IsValid() {
		return tenantDefault
	}
	return RoleMember
}
