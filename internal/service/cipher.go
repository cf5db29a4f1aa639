// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"fmt"

	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/models"
)

type messageCipher struct {
	keys     ConversationKeyManager
	keychain crypto.KeyChainService
}

// NewMessageCipher builds the per-message encryption service on top of the
// conversation-key manager.
func NewMessageCipher(keys ConversationKeyManager, keychain crypto.KeyChainService) MessageCipher {
	return &messageCipher{keys: keys, keychain: keychain}
}

// EncryptMessage implements [MessageCipher]. The conversation ID rides along
// as associated data, so the blob authenticates only inside its own
// conversation.
func (c *messageCipher) EncryptMessage(ctx context.Context, conversationID, plaintext string) (models.EncryptedBlob, error) {
	key, err := c.keys.GetConversationKey(ctx, conversationID)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	blob, err := c.keychain.Encrypt([]byte(plaintext), key, []byte(conversationID))
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}
	return blob, nil
}

// DecryptMessage implements [MessageCipher]. Authentication failure is a hard
// error, never a partial decode.
func (c *messageCipher) DecryptMessage(ctx context.Context, conversationID string, blob models.EncryptedBlob) (string, error) {
	key, err := c.keys.GetConversationKey(ctx, conversationID)
	if err != nil {
		return "", err
	}

	plaintext, err := c.keychain.Decrypt(blob, key, []byte(conversationID))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

// EncryptTitle implements [MessageCipher]. Titles use the same conversation
// key as bodies; the fresh per-call nonce keeps them independent.
func (c *messageCipher) EncryptTitle(ctx context.Context, conversationID, title string) (models.EncryptedBlob, error) {
	return c.EncryptMessage(ctx, conversationID, title)
}

// DecryptTitle implements [MessageCipher].
func (c *messageCipher) DecryptTitle(ctx context.Context, conversationID string, blob models.EncryptedBlob) (string, error) {
	return c.DecryptMessage(ctx, conversationID, blob)
}
