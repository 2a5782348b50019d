package authz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tapline/tapline/pkg/audit"
	"github.com/tapline/tapline/pkg/credential"
	"github.com/tapline/tapline/pkg/grants"
	"github.com/tapline/tapline/pkg/hierarchy"
	"github.com/tapline/tapline/pkg/membership"
	"github.com/tapline/tapline/pkg/permcache"
)

// Audit action names emitted by the engine.
const (
	auditActionAuthorize = "authz.authorize"
	auditActionIsolation = "authz.tenant_isolation"
	auditActionBypass    = "authz.system_owner_bypass"
)

// AuthResult is the outcome of a successful authentication: the verified
// identity and the principal's active membership.
type AuthResult struct {
	Identity   credential.Identity
	Membership *membership.Membership
}

// snapshot is the cached payload: the membership's role at load time plus
// the fully merged module grant matrix.
type snapshot struct {
	Role   hierarchy.Role
	Grants map[grants.Module]grants.ActionSet
}

// valid is the shape check on cached payloads. A snapshot that fails it
// is treated as a forced miss, never as a crash or an allow.
func (s snapshot) valid() bool {
	return s.Role.IsValid() && s.Grants != nil
}

// Engine answers the three authorization questions. It is safe for
// concurrent use; the permission cache is its only shared mutable state
// and is internally synchronized.
type Engine struct {
	verifier    credential.Verifier
	resolver    *membership.Resolver
	accessor    *grants.Accessor
	sink        audit.Sink
	log         *slog.Logger
	perms       *permcache.Cache[snapshot]
	lists       *permcache.Cache[[]membership.Membership]
	systemOwner string
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	sink        audit.Sink
	log         *slog.Logger
	permTTL     time.Duration
	listTTL     time.Duration
	systemOwner string
	clock       func() time.Time
}

// WithAuditSink sets the audit destination; default is NoopSink.
func WithAuditSink(sink audit.Sink) Option {
	return func(c *engineConfig) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithLogger sets the engine logger; default is slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(c *engineConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithPermCacheTTL overrides the permission-set cache TTL.
func WithPermCacheTTL(ttl time.Duration) Option {
	return func(c *engineConfig) { c.permTTL = ttl }
}

// WithListCacheTTL overrides the list cache TTL.
func WithListCacheTTL(ttl time.Duration) Option {
	return func(c *engineConfig) { c.listTTL = ttl }
}

// WithSystemOwner designates the single principal allowed through the
// operational escape hatch. Every use is logged at WARN and audited as a
// bypass; with an empty id the code path is inert.
func WithSystemOwner(principalID string) Option {
	return func(c *engineConfig) { c.systemOwner = principalID }
}

// WithClock injects a time source for both cache namespaces.
func WithClock(clock func() time.Time) Option {
	return func(c *engineConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithConfig applies an environment-loaded Config.
func WithConfig(cfg Config) Option {
	return func(c *engineConfig) {
		c.permTTL = cfg.PermCacheTTL
		c.listTTL = cfg.ListCacheTTL
		c.systemOwner = cfg.SystemOwnerID
	}
}

// NewEngine constructs the engine over its collaborator contracts.
func NewEngine(verifier credential.Verifier, memberships membership.Store, grantStore grants.Store, opts ...Option) *Engine {
	if verifier == nil {
		panic("authz: verifier cannot be nil")
	}

	cfg := engineConfig{
		sink:    audit.NewNoopSink(),
		log:     slog.Default(),
		permTTL: permcache.DefaultTTL,
		listTTL: permcache.DefaultListTTL,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		verifier:    verifier,
		resolver:    membership.NewResolver(memberships),
		accessor:    grants.NewAccessor(grantStore),
		sink:        cfg.sink,
		log:         cfg.log,
		perms:       permcache.New[snapshot](cfg.permTTL, permcache.WithClock(cfg.clock)),
		lists:       permcache.New[[]membership.Membership](cfg.listTTL, permcache.WithClock(cfg.clock)),
		systemOwner: cfg.systemOwner,
	}
}

// Authenticate verifies the bearer credential and resolves the
// principal's active membership. An inactive membership is never treated
// as active; the specific status travels in the decision detail so the
// UI can say "suspended" rather than "unknown user".
func (e *Engine) Authenticate(ctx context.Context, bearer string) (AuthResult, Decision) {
	identity, err := e.verifier.Verify(ctx, bearer)
	if err != nil {
		return AuthResult{}, deny(ReasonCredentialInvalid, "")
	}

	m, err := e.resolver.Resolve(ctx, identity.PrincipalID)
	if err != nil {
		var inactive *membership.InactiveError
		switch {
		case errors.As(err, &inactive):
			return AuthResult{}, deny(ReasonMembershipInactive, "status="+string(inactive.Status))
		case errors.Is(err, membership.ErrNotFound):
			return AuthResult{}, deny(ReasonMembershipNotFound, "")
		default:
			return AuthResult{}, denyRetryable(ReasonStoreUnavailable, "")
		}
	}

	return AuthResult{Identity: identity, Membership: m}, allow()
}

// Authorize decides whether the credential's principal may perform the
// action on the module. The sequence is strictly authenticate, resolve
// permissions, decide, audit; a cache hit skips only the grant-store
// read. Audit emission is best-effort and never changes the decision.
func (e *Engine) Authorize(ctx context.Context, bearer string, module grants.Module, action grants.Action) Decision {
	_, dec := e.authorize(ctx, bearer, module, action)
	return dec
}

func (e *Engine) authorize(ctx context.Context, bearer string, module grants.Module, action grants.Action) (AuthResult, Decision) {
	identity, err := e.verifier.Verify(ctx, bearer)
	if err != nil {
		return AuthResult{}, deny(ReasonCredentialInvalid, "")
	}

	// The escape hatch sits above the membership layer on purpose: it is
	// an operational identity, not a role, and may predate any tenant.
	if e.systemOwner != "" && identity.PrincipalID == e.systemOwner {
		e.log.WarnContext(ctx, "system owner bypass exercised",
			slog.String("principal_id", identity.PrincipalID),
			slog.String("module", string(module)),
			slog.String("action", string(action)),
		)
		e.emit(ctx, audit.NewEvent(identity.PrincipalID, "", auditActionBypass,
			string(module), audit.OutcomeBypass, "action="+string(action)))
		return AuthResult{Identity: identity}, allow()
	}

	res, dec := e.authenticateIdentity(ctx, identity)
	if dec.Denied() {
		e.emit(ctx, audit.NewEvent(identity.PrincipalID, "", auditActionAuthorize,
			string(module), audit.OutcomeDenied, dec.String()))
		return AuthResult{}, dec
	}
	m := res.Membership

	snap, dec := e.permissionSet(ctx, m)
	if dec.Denied() {
		e.emit(ctx, e.event(m, auditActionAuthorize, string(module), audit.OutcomeDenied, dec.String()))
		return AuthResult{}, dec
	}

	if !module.IsValid() || !action.IsValid() || !snap.Grants[module].Allows(action) {
		dec := deny(ReasonPermissionMissing,
			fmt.Sprintf("module=%s action=%s", module, action))
		e.emit(ctx, e.event(m, auditActionAuthorize, string(module), audit.OutcomeDenied, dec.String()))
		return AuthResult{}, dec
	}

	e.emit(ctx, e.event(m, auditActionAuthorize, string(module), audit.OutcomeAllowed, "action="+string(action)))
	return res, allow()
}

// CheckTenantIsolation decides whether the credential's principal shares
// the tenant of the resource. Strict equality, no hierarchy override,
// and the system-owner bypass does not apply: isolation is absolute.
func (e *Engine) CheckTenantIsolation(ctx context.Context, bearer string, resourceTenantID uuid.UUID) Decision {
	res, dec := e.Authenticate(ctx, bearer)
	if dec.Denied() {
		return dec
	}
	m := res.Membership

	if m.TenantID != resourceTenantID {
		dec := deny(ReasonCrossTenant, "")
		e.emit(ctx, e.event(m, auditActionIsolation, "", audit.OutcomeDenied, dec.String()))
		return dec
	}

	e.emit(ctx, e.event(m, auditActionIsolation, "", audit.OutcomeAllowed, ""))
	return allow()
}

// InvalidatePrincipal drops the cached permission set for one principal.
// Whatever mutates a membership or its grants must call this so the next
// check performs a fresh store load.
func (e *Engine) InvalidatePrincipal(principalID string) {
	e.perms.Invalidate(principalID)
}

// InvalidateAll clears both cache namespaces. Used after bulk hierarchy
// migrations.
func (e *Engine) InvalidateAll() {
	e.perms.InvalidateAll()
	e.lists.InvalidateAll()
}

// SweepExpired removes expired entries from both namespaces and returns
// the total dropped. The host process owns the timer.
func (e *Engine) SweepExpired() int {
	return e.perms.SweepExpired() + e.lists.SweepExpired()
}

// Lists exposes the short-TTL cache namespace for list-shaped results,
// kept separate so list staleness never couples to permission staleness.
func (e *Engine) Lists() *permcache.Cache[[]membership.Membership] {
	return e.lists
}

// Stats reports cache counters for both namespaces.
func (e *Engine) Stats() (perms, lists permcache.Stats) {
	return e.perms.Stats(), e.lists.Stats()
}

// DefaultGrantsFor exposes the role default table so membership-creation
// code can seed initial grant rows without duplicating it.
func DefaultGrantsFor(role hierarchy.Role) map[grants.Module]grants.ActionSet {
	return hierarchy.DefaultGrants(role)
}

// authenticateIdentity resolves the membership for an already verified
// identity.
func (e *Engine) authenticateIdentity(ctx context.Context, identity credential.Identity) (AuthResult, Decision) {
	m, err := e.resolver.Resolve(ctx, identity.PrincipalID)
	if err != nil {
		var inactive *membership.InactiveError
		switch {
		case errors.As(err, &inactive):
			return AuthResult{}, deny(ReasonMembershipInactive, "status="+string(inactive.Status))
		case errors.Is(err, membership.ErrNotFound):
			return AuthResult{}, deny(ReasonMembershipNotFound, "")
		default:
			return AuthResult{}, denyRetryable(ReasonStoreUnavailable, "")
		}
	}
	return AuthResult{Identity: identity, Membership: m}, allow()
}

// permissionSet returns the merged grant matrix for the membership,
// serving from cache when possible. The generation is snapshotted before
// the slow load so a concurrent invalidation wins over a stale put.
func (e *Engine) permissionSet(ctx context.Context, m *membership.Membership) (snapshot, Decision) {
	key := m.PrincipalID

	gen := e.perms.Generation(key)
	if snap, ok := e.perms.Get(key); ok {
		// Shape check plus role-change detection: a payload that fails
		// either is a forced miss, never a crash and never an allow.
		if snap.valid() && snap.Role == m.Role {
			return snap, allow()
		}
		e.perms.Invalidate(key)
		gen = e.perms.Generation(key)
	}

	explicit, err := e.accessor.Load(ctx, m.ID)
	if err != nil {
		return snapshot{}, denyRetryable(ReasonStoreUnavailable, "")
	}

	snap := snapshot{Role: m.Role, Grants: mergeGrants(m.Role, explicit)}
	e.perms.Put(key, snap, 0, gen)
	return snap, allow()
}

// mergeGrants lays explicit grant rows over the role default table. An
// explicit row fully overrides the default for its module; absence of a
// row falls back to the default. Stored bits are trusted verbatim, even
// when they violate the implication chain the defaults follow.
func mergeGrants(role hierarchy.Role, explicit map[grants.Module]grants.ActionSet) map[grants.Module]grants.ActionSet {
	out := hierarchy.DefaultGrants(role)
	for mod, set := range explicit {
		out[mod] = set
	}
	return out
}

// event builds an audit event carrying the membership's coordinates.
func (e *Engine) event(m *membership.Membership, action, module string, outcome audit.Outcome, detail string) audit.Event {
	return audit.NewEvent(m.PrincipalID, m.TenantID.String(), action, module, outcome, detail)
}

// emit reports to the audit sink best-effort. Emission failure is logged
// and swallowed: the audit trail is never load-bearing for the decision.
func (e *Engine) emit(ctx context.Context, event audit.Event) {
	if err := e.sink.Record(ctx, event); err != nil {
		e.log.WarnContext(ctx, "audit emission failed",
			slog.String("action", event.Action),
			slog.String("principal_id", event.PrincipalID),
			slog.Any("error", err),
		)
	}
}
