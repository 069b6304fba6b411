package main

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/placeshare/places-api/migrations"
)

// runMigrations applies the embedded goose migrations with the given
// command (up, down, status).
func runMigrations(db *sql.DB, command string) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, "."); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	case "down":
		if err := goose.Down(db, "."); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	case "status":
		if err := goose.Status(db, "."); err != nil {
			return fmt.Errorf("failed to report migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	return nil
}
