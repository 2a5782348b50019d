// Package membership models the binding of a principal to a tenant and
// resolves principals to their active membership for authorization.
//
// A Membership carries the tenant id, the principal id issued by the
// credential verifier, an ordered role, a status, and the immutable
// first-member flag. At most one membership per (principal, tenant) pair
// is active at a time, and at most one membership per tenant carries the
// first-member flag.
//
// The Resolver preserves the difference between "no membership" and
// "membership exists but is suspended/inactive" so that callers can show
// an accurate message instead of a generic denial:
//
//	m, err := resolver.Resolve(ctx, principalID)
//	switch {
//	case errors.Is(err, membership.ErrNotFound):
//	    // never joined, or the record was removed
//	case errors.As(err, &inactive):
//	    // inactive.Status says whether it is suspended or deactivated
//	}
//
// Status transitions (active ⇄ suspended → inactive) are administrative
// actions performed elsewhere; this package only validates them and reads
// the result. Whatever performs a transition must invalidate the
// permission cache for the affected principal.
package membership
