// Package migrations holds the goose SQL migrations of the service schema.
package migrations

import "embed"

// FS contains every migration file, applied in lexical order
//
//go:embed *.sql
var FS embed.FS
