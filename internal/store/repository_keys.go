package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/models"
)

// keyRepository is the PostgreSQL-backed implementation of [KeyRepository].
// One row per (user_id, conversation_id); the wrapped key is opaque base64
// ciphertext to the server.
type keyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyRepository constructs a [KeyRepository] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, log *logger.Logger) KeyRepository {
	log.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: log,
	}
}

// UpsertKey inserts or replaces the wrapped-key row for
// (userID, record.ConversationID). A zero-affected-rows result is reported
// as [ErrKeyRecordNotSaved].
func (r *keyRepository) UpsertKey(ctx context.Context, userID int64, record models.WrappedKeyRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertKeyQuery(
		userID,
		record.ConversationID,
		record.Key.Ciphertext,
		record.Key.Nonce,
		record.KeyHash,
		record.KeyVersion,
		record.Algorithm,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.UpsertKey").Msg("error: executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeyRecordNotSaved
	}

	return nil
}

// GetKey returns the wrapped-key row for (userID, conversationID).
func (r *keyRepository) GetKey(ctx context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetKeyQuery(userID, conversationID)
	if err != nil {
		return models.WrappedKeyRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	record, err := scanKeyRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WrappedKeyRecord{}, ErrKeyRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.GetKey").Msg("error: scanning key record")
		return models.WrappedKeyRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}
