package app

import (
	"database/sql"
	"embed"
	"fmt"
	"github.com/pressly/goose/v3"
	"ledger/internal/app/logger"
)

// applyMigrations from the embedded migrations directory
func applyMigrations(embedMigrations embed.FS, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}
	logger.Global().Info().Int64("schema_version", version).Msg("Migrations applied")

	return nil
}
