// Package migrations holds the goose SQL migrations applied to the metrics database.
package migrations

import "embed"

// FS contains every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS
