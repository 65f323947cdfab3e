// Package migrations embeds the SQL schema so every binary migrates the same files.
package migrations

import "embed"

//go:embed postgres/*.sql
var FS embed.FS

const Dir = "postgres"
