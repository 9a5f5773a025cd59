// Package phishguard holds embedded assets shared by the CLI commands.
package phishguard

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command
// and by integration tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
