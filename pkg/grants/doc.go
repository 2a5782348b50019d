// Package grants defines the per-module permission model for the tapline
// back-office and provides access to stored permission grants.
//
// Every functional area of the application is a Module, and every membership
// carries at most one PermissionGrant per module. A grant is a fixed vector
// of five independent action bits (view, create, edit, delete, administer).
// Modules without an explicit grant resolve to an all-false ActionSet:
// default-deny is the baseline, role defaults and explicit grants can only
// widen from there.
//
// The Store interface abstracts the durable backend. PgStore is the
// canonical PostgreSQL implementation; tests use in-memory fakes.
// Accessor sits on top of a Store and materializes the complete
// module-to-ActionSet mapping for one membership:
//
//	accessor := grants.NewAccessor(store)
//	explicit, err := accessor.Load(ctx, membershipID)
//	if err != nil {
//	    // errors.Is(err, grants.ErrStoreUnavailable) means retry later;
//	    // the caller must deny in the meantime, never allow.
//	}
//
// Accessor.Load returns only explicitly recorded rows so that callers can
// distinguish "recorded as all-false" from "no row recorded" when merging
// with role defaults. Use Resolve to expand the result into a complete
// matrix covering every known module.
package grants
