package authz

import "time"

// Config carries the environment-driven engine settings.
type Config struct {
	// PermCacheTTL bounds how long a resolved permission set may be
	// served without re-reading the grant store.
	PermCacheTTL time.Duration `env:"AUTHZ_PERM_CACHE_TTL" envDefault:"5m"`
	// ListCacheTTL bounds list-shaped results, kept shorter than
	// permission sets on purpose.
	ListCacheTTL time.Duration `env:"AUTHZ_LIST_CACHE_TTL" envDefault:"2m"`
	// SystemOwnerID enables the operational escape hatch for exactly
	// one principal. Empty disables the bypass entirely.
	SystemOwnerID string `env:"AUTHZ_SYSTEM_OWNER_ID"`
}
