// Package hierarchy is the single source of truth for role ordering and
// the rules that govern who may view, edit, or deprovision whom inside a
// tenant. Every function here is pure: no I/O, no shared state, safe for
// concurrent use without synchronization.
//
// Roles form a total order from highest to lowest privilege:
//
//	OWNER > ADMIN > MANAGER > MEMBER
//
// Two rules ride on the ordering: a membership may only view or edit
// memberships at an equal or lower level, and only an OWNER may promote
// to OWNER or remove an OWNER. The first member of a new tenant is
// bootstrapped straight to OWNER.
//
// DefaultGrants defines the role-based permission templates applied when
// a membership is created. The table is the only place the
// administer ⇒ delete ⇒ edit ⇒ create ⇒ view implication is guaranteed;
// explicitly stored grants may diverge and are trusted verbatim.
package hierarchy
