// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Declare a struct with env tags and load it once:
//
//	type Config struct {
//	    PermCacheTTL time.Duration `env:"AUTHZ_PERM_CACHE_TTL" envDefault:"5m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// Each configuration type is parsed at most once per process and cached;
// concurrent loads of the same type are safe. MustLoad panics on failure
// for configuration the service cannot start without.
package config
