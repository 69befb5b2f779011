// Package migrations embeds the goose SQL migrations of the service schema.
package migrations

import "embed"

// FS holds the migration files, applied with goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
