// Package migrations embeds the schema migrations of the state database.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
