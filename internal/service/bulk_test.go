// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/mock"
	"github.com/quillchat/chatvault/models"
)

func newTestBulkDecryptor(t *testing.T, ctrl *gomock.Controller) (BulkDecryptor, *mock.MockConversationKeyManager, []byte) {
	t.Helper()
	keychain := crypto.NewKeyChainService()

	key, err := keychain.GenerateConversationKey()
	require.NoError(t, err)

	keys := mock.NewMockConversationKeyManager(ctrl)
	return NewBulkDecryptor(keys, keychain, logger.Nop()), keys, key
}

// encryptBatch seals n numbered plaintexts under key for conversationID.
func encryptBatch(t *testing.T, conversationID string, key []byte, n int) []models.EncryptedMessage {
	t.Helper()
	keychain := crypto.NewKeyChainService()

	items := make([]models.EncryptedMessage, n)
	for i := range items {
		blob, err := keychain.Encrypt([]byte(fmt.Sprintf("message %d", i)), key, []byte(conversationID))
		require.NoError(t, err)
		items[i] = models.EncryptedMessage{ID: fmt.Sprintf("msg-%d", i), Blob: blob}
	}
	return items
}

func TestBulkDecryptor_AllItemsDecryptInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	bulk, keys, key := newTestBulkDecryptor(t, ctrl)
	ctx := context.Background()

	items := encryptBatch(t, "conv-1", key, 50)
	keys.EXPECT().GetConversationKey(ctx, "conv-1").Return(key, nil)

	results, err := bulk.DecryptMessages(ctx, "conv-1", items)
	require.NoError(t, err)
	require.Len(t, results, 50)

	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), result.ID)
		assert.Equal(t, fmt.Sprintf("message %d", i), result.Content)
		assert.False(t, result.Failed)
	}
}

func TestBulkDecryptor_OneCorruptedItemIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	bulk, keys, key := newTestBulkDecryptor(t, ctrl)
	ctx := context.Background()

	items := encryptBatch(t, "conv-1", key, 10)

	raw, err := base64.StdEncoding.DecodeString(items[3].Blob.Ciphertext)
	require.NoError(t, err)
	raw[0] ^= 0xff
	items[3].Blob.Ciphertext = base64.StdEncoding.EncodeToString(raw)

	keys.EXPECT().GetConversationKey(ctx, "conv-1").Return(key, nil)

	results, err := bulk.DecryptMessages(ctx, "conv-1", items)
	require.NoError(t, err)
	require.Len(t, results, 10)

	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), result.ID)
		if i == 3 {
			assert.True(t, result.Failed)
			assert.Equal(t, models.DecryptionFailedSentinel, result.Content)
			continue
		}
		assert.False(t, result.Failed)
		assert.Equal(t, fmt.Sprintf("message %d", i), result.Content)
	}
}

func TestBulkDecryptor_KeyResolutionFailureAbortsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	bulk, keys, key := newTestBulkDecryptor(t, ctrl)
	ctx := context.Background()

	items := encryptBatch(t, "conv-1", key, 3)
	keys.EXPECT().GetConversationKey(ctx, "conv-1").Return(nil, ErrVaultLocked)

	_, err := bulk.DecryptMessages(ctx, "conv-1", items)
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestBulkDecryptor_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	bulk, keys, key := newTestBulkDecryptor(t, ctrl)
	ctx := context.Background()

	keys.EXPECT().GetConversationKey(ctx, "conv-1").Return(key, nil)

	results, err := bulk.DecryptMessages(ctx, "conv-1", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
