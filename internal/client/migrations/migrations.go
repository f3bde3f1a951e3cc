// Package migrations embeds the device SQLite schema applied by goose on
// client start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
