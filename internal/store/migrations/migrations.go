// Package migrations embeds the directory database schema and seed data.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
