// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"fmt"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/models"
)

type keyService struct {
	repo store.KeyRepository
	log  *logger.Logger
}

// NewKeyService builds the wrapped-key store service.
func NewKeyService(repo store.KeyRepository, log *logger.Logger) KeyService {
	return &keyService{repo: repo, log: log}
}

// UpsertKey implements [KeyService]. The server validates shape only; the
// key material is opaque ciphertext it cannot inspect.
func (k *keyService) UpsertKey(ctx context.Context, userID int64, record models.WrappedKeyRecord) error {
	if record.ConversationID == "" {
		return fmt.Errorf("%w: conversation ID is required", ErrInvalidDataProvided)
	}
	if record.Key.Ciphertext == "" || record.Key.Nonce == "" {
		return fmt.Errorf("%w: wrapped key and wrapping nonce are required", ErrInvalidDataProvided)
	}
	if record.KeyVersion < 1 || record.Algorithm == "" {
		return fmt.Errorf("%w: key version and algorithm are required", ErrInvalidDataProvided)
	}

	if err := k.repo.UpsertKey(ctx, userID, record); err != nil {
		return err
	}

	k.log.Debug().Int64("user_id", userID).Str("conversation_id", record.ConversationID).Msg("wrapped key stored")
	return nil
}

// GetKey implements [KeyService].
func (k *keyService) GetKey(ctx context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error) {
	if conversationID == "" {
		return models.WrappedKeyRecord{}, fmt.Errorf("%w: conversation ID is required", ErrInvalidDataProvided)
	}

	return k.repo.GetKey(ctx, userID, conversationID)
}
