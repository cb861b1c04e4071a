// Package migrations embeds the goose migrations for the ticket schema the
// leaderboard reads. Production runs against the existing Nephthys database;
// these exist for local development and integration tests.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var files embed.FS

// FS returns the migration files.
func FS() fs.FS {
	return files
}
