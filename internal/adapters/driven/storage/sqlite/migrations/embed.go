// Package migrations holds the versioned schema of the search history
// database. Files are named NNN_name.up.sql and applied in order.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS
