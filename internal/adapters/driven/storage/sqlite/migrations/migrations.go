// Package migrations embeds the SQL migration files for the chunk index.
package migrations

import "embed"

// FS holds the numbered .up.sql migration files.
//
//go:embed *.sql
var FS embed.FS
