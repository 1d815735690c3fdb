// Package schema carries the table definitions sqlc generates the db package from.
package schema

import _ "embed"

//go:embed schema.sql
var SQL string
