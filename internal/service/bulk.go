// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/models"
)

// bulkWorkers bounds the decryption fan-out per batch.
const bulkWorkers = 8

type bulkDecryptor struct {
	keys     ConversationKeyManager
	keychain crypto.KeyChainService
	log      *logger.Logger
}

// NewBulkDecryptor builds the batch decryption service.
func NewBulkDecryptor(keys ConversationKeyManager, keychain crypto.KeyChainService, log *logger.Logger) BulkDecryptor {
	return &bulkDecryptor{keys: keys, keychain: keychain, log: log}
}

// DecryptMessages implements [BulkDecryptor]. The conversation key is
// resolved once; each item then decrypts independently, and a failed item is
// replaced by the sentinel so one corrupted row cannot hide the rest of the
// conversation.
func (b *bulkDecryptor) DecryptMessages(ctx context.Context, conversationID string, items []models.EncryptedMessage) ([]models.DecryptedMessage, error) {
	key, err := b.keys.GetConversationKey(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	results := make([]models.DecryptedMessage, len(items))
	aad := []byte(conversationID)

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(bulkWorkers)

	for i, item := range items {
		i, item := i, item
		group.Go(func() error {
			plaintext, err := b.keychain.Decrypt(item.Blob, key, aad)
			if err != nil {
				b.log.Debug().Str("conversation_id", conversationID).Str("message_id", item.ID).Msg("message failed authentication")
				results[i] = models.DecryptedMessage{
					ID:      item.ID,
					Content: models.DecryptionFailedSentinel,
					Failed:  true,
				}
				return nil
			}
			results[i] = models.DecryptedMessage{ID: item.ID, Content: string(plaintext)}
			return nil
		})
	}

	// Workers never return errors, failures are isolated per item.
	_ = group.Wait()

	return results, nil
}
