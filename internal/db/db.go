// Package db embeds the schema migrations applied by pg.Migrate.
package db

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migration files rooted at the directory
// pg.Migrate expects.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		// Unreachable: the path is a compile-time embed directive.
		panic(err)
	}
	return sub
}
