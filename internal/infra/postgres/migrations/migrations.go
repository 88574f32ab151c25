package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds every registered schema change, applied in filename order.
var Migrations = migrate.NewMigrations()
