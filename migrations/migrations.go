// Package migrations embeds the SQL schema migrations.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var files embed.FS

// FS returns the embedded migration files as a flat filesystem.
func FS() fs.FS {
	return files
}
