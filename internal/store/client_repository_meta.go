// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/models"
)

// vaultMetaRepository is the SQLite-backed implementation of
// [VaultMetaRepository].
type vaultMetaRepository struct {
	db     *ClientDB
	logger *logger.Logger
}

// NewVaultMetaRepository constructs a [VaultMetaRepository] backed by the
// provided client database.
func NewVaultMetaRepository(db *ClientDB, log *logger.Logger) VaultMetaRepository {
	log.Debug().Msg("creating vault meta repository")
	return &vaultMetaRepository{db: db, logger: log}
}

// GetMeta implements [VaultMetaRepository]. An uninitialized vault yields
// (nil, nil).
func (r *vaultMetaRepository) GetMeta(ctx context.Context) (*models.VaultMeta, error) {
	var meta models.VaultMeta
	err := r.db.QueryRowContext(ctx, getVaultMeta).Scan(
		&meta.Login,
		&meta.EncryptionSalt,
		&meta.Initialized,
		&meta.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &meta, nil
}

// SaveMeta implements [VaultMetaRepository].
func (r *vaultMetaRepository) SaveMeta(ctx context.Context, meta models.VaultMeta) error {
	createdAt := meta.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertVaultMeta,
		meta.Login,
		meta.EncryptionSalt,
		meta.Initialized,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
