// Package migrations embeds the SQL schema applied before seeding.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
