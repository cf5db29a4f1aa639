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

// localKeyRepository is the SQLite-backed implementation of
// [LocalKeyRepository].
type localKeyRepository struct {
	db     *ClientDB
	logger *logger.Logger
}

// NewLocalKeyRepository constructs a [LocalKeyRepository] backed by the
// provided client database.
func NewLocalKeyRepository(db *ClientDB, log *logger.Logger) LocalKeyRepository {
	log.Debug().Msg("creating local key repository")
	return &localKeyRepository{db: db, logger: log}
}

// SaveKey implements [LocalKeyRepository]. The upsert keeps the original
// created_at of an existing row.
func (r *localKeyRepository) SaveKey(ctx context.Context, record models.WrappedKeyRecord, pendingRemote bool) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertLocalKey,
		record.ConversationID,
		record.Key.Ciphertext,
		record.Key.Nonce,
		record.KeyHash,
		record.KeyVersion,
		record.Algorithm,
		pendingRemote,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// GetKey implements [LocalKeyRepository]. A missing row yields (nil, nil).
func (r *localKeyRepository) GetKey(ctx context.Context, conversationID string) (*models.WrappedKeyRecord, error) {
	row := r.db.QueryRowContext(ctx, getLocalKey, conversationID)

	record, err := scanKeyRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &record, nil
}

// AnyKey implements [LocalKeyRepository]. An empty store yields (nil, nil).
func (r *localKeyRepository) AnyKey(ctx context.Context) (*models.WrappedKeyRecord, error) {
	row := r.db.QueryRowContext(ctx, getAnyLocalKey)

	record, err := scanKeyRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &record, nil
}

// DeleteKey implements [LocalKeyRepository].
func (r *localKeyRepository) DeleteKey(ctx context.Context, conversationID string) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalKey, conversationID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ListPendingRemote implements [LocalKeyRepository].
func (r *localKeyRepository) ListPendingRemote(ctx context.Context) ([]models.WrappedKeyRecord, error) {
	rows, err := r.db.QueryContext(ctx, listPendingRemoteKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.WrappedKeyRecord
	for rows.Next() {
		record, err := scanKeyRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// ClearPendingRemote implements [LocalKeyRepository].
func (r *localKeyRepository) ClearPendingRemote(ctx context.Context, conversationID string) error {
	if _, err := r.db.ExecContext(ctx, clearPendingRemoteKey, conversationID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func scanKeyRecord(scan func(dest ...any) error) (models.WrappedKeyRecord, error) {
	var record models.WrappedKeyRecord
	err := scan(
		&record.ConversationID,
		&record.Key.Ciphertext,
		&record.Key.Nonce,
		&record.KeyHash,
		&record.KeyVersion,
		&record.Algorithm,
		&record.CreatedAt,
	)
	return record, err
}
