// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool
// with retry, goose schema migrations, a health check closure, and the
// error helpers the store packages share.
//
// The membership and grant stores ride on the pool this package
// produces; the migrations shipped in internal/db/migrations create the
// tables they assume.
package pg
