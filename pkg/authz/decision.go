package authz

// Reason classifies why a Decision denied.
type Reason string

const (
	ReasonCredentialInvalid  Reason = "credential_invalid"
	ReasonMembershipNotFound Reason = "membership_not_found"
	ReasonMembershipInactive Reason = "membership_inactive"
	ReasonPermissionMissing  Reason = "permission_missing"
	ReasonCrossTenant        Reason = "cross_tenant"
	ReasonStoreUnavailable   Reason = "store_unavailable"
)

// Decision is the typed outcome of an authorization check. Denials are
// ordinary values, never panics or errors used for control flow; the
// caller inspects the reason and decides the user-facing response.
type Decision struct {
	Allowed bool
	Reason  Reason
	// Detail carries operator-facing specifics, e.g.
	// "module=inventory action=delete" or "status=suspended".
	Detail string
	// Retryable marks denials caused by infrastructure rather than
	// policy; the caller may retry the request.
	Retryable bool
}

// Denied reports whether the decision is a denial.
func (d Decision) Denied() bool { return !d.Allowed }

// String renders the decision for logs and audit detail fields.
func (d Decision) String() string {
	if d.Allowed {
		return "allowed"
	}
	if d.Detail == "" {
		return string(d.Reason)
	}
	return string(d.Reason) + ": " + d.Detail
}

// UserMessage returns the text safe to show outside the tenant. All
// denials collapse to the same message so a cross-tenant denial is
// indistinguishable from a permission denial and tenants cannot be
// enumerated.
func (d Decision) UserMessage() string {
	if d.Allowed {
		return "ok"
	}
	return "not authorized"
}

// allow is the affirmative decision.
func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail}
}

func denyRetryable(reason Reason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail, Retryable: true}
}
