// Package migrations embeds the goose migration scripts for the SQL-backed
// blob stores.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS
