// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/logger"
)

// ClientDB wraps the client's SQLite connection.
type ClientDB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the local key-store file and
// bootstraps its schema. SQLite needs no migration tooling here: the client
// schema is two tables and is created idempotently at startup.
func NewConnectSQLite(ctx context.Context, cfg config.ClientLocal, log *logger.Logger) (*ClientDB, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	db := &ClientDB{
		DB:     conn,
		logger: log,
	}

	if err = db.bootstrapSchema(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local key store")

	return db, nil
}

func (db *ClientDB) bootstrapSchema(ctx context.Context) error {
	for _, stmt := range []string{createVaultMetaTable, createConversationKeysTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap local schema: %w", err)
		}
	}
	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
