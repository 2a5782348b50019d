package hierarchy

// Role is one of the ordered privilege levels of a membership.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// roleLevels maps roles to their privilege level, higher meaning more
// privileged. Unknown roles map to zero, below every real role.
var roleLevels = map[Role]int{
	RoleMember:  1,
	RoleManager: 2,
	RoleAdmin:   3,
	RoleOwner:   4,
}

// Roles returns all roles ordered from highest to lowest privilege.
func Roles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleManager, RoleMember}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level returns the privilege level of the role; zero for unknown roles.
func (r Role) Level() int {
	return roleLevels[r]
}

// Outranks reports whether r is strictly more privileged than other.
func (r Role) Outranks(other Role) bool {
	return r.Level() > other.Level()
}

// AtLeast reports whether r is at least as privileged as other.
func (r Role) AtLeast(other Role) bool {
	return r.IsValid() && r.Level() >= other.Level()
}
