// Package authz is the authorization engine of the tapline back-office:
// it decides, per request, whether a principal may perform an action on a
// module inside its tenant, and keeps that decision cheap with a
// generation-stamped permission cache.
//
// The engine composes narrow contracts: a credential.Verifier for bearer
// tokens, a membership.Store for tenant memberships, a grants.Store for
// explicit permission rows, and an audit.Sink for outcomes. It exposes
// three operations:
//
//	res, dec := engine.Authenticate(ctx, bearer)
//	dec := engine.Authorize(ctx, bearer, grants.ModuleInventory, grants.ActionEdit)
//	dec := engine.CheckTenantIsolation(ctx, bearer, resourceTenantID)
//
// Every operation returns a Decision value the caller must branch on;
// nothing here panics or hides control flow in wrappers. Permission
// checks therefore sit visibly at the top of each request handler, or in
// the Require middleware for hosts that prefer an interceptor.
//
// Resolution order inside Authorize is fixed: verify credential,
// resolve membership, consult the permission cache, on miss load
// explicit grants and merge them over the role defaults (an explicit row
// fully overrides the default for its module), decide, emit audit.
// Any ambiguity (missing grant row, unreachable store, expired cache
// entry that cannot be reloaded) resolves to denial.
//
// Whatever mutates memberships or grants must call InvalidatePrincipal
// (or InvalidateAll after bulk migrations) so the next check re-reads
// the store. Tenant isolation is absolute: no role, including OWNER,
// crosses tenants, and the optional system-owner bypass does not apply
// to isolation checks.
package authz
