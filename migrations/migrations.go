// Package migrations embeds the goose SQL migration files so they can be
// applied from the migrate binary without shipping the files separately.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
