// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package migrations holds the key-store server schema as embedded goose
// migrations, applied at startup before any repository touches the database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

const dialect = "pgx"

// Migrate brings the server schema up to date with the SQL files embedded in
// this package.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migrate: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
