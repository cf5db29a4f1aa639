// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package service implements the vault: the lifecycle of the password-derived
// master key, per-conversation key management, and authenticated encryption
// of message content. The service layer holds all raw key material; stores
// and adapters below it only ever see wrapped keys and ciphertext.
package service

import (
	"context"

	"github.com/quillchat/chatvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultSession is the lifecycle state machine of the master key. The key is
// held in memory iff the session is unlocked and is dropped wholesale on
// Lock. State transitions:
//
//	Uninitialized → Setup → Unlocked
//	Unlocked → Lock → Locked → Unlock → Unlocked
type VaultSession interface {
	// Setup initializes the vault for a new account: it generates the KDF
	// salt, derives the master key, registers the account with the remote
	// key store (best effort), persists the vault metadata locally, and
	// leaves the session unlocked. Valid only when the vault has never been
	// set up; a second call fails with ErrVaultAlreadyInitialized.
	// Passwords shorter than 8 characters fail with ErrPasswordTooShort.
	Setup(ctx context.Context, login, password string) (bool, error)

	// Unlock re-derives the master key from the password and the stored
	// salt. If local metadata is missing, the salt is recovered from the
	// remote key store using login (cross-device restore); with local
	// metadata present, login may be empty. The derived key is verified by
	// unwrapping one existing wrapped-key record; when no record exists yet
	// the password is accepted unconditionally, since a wrong password is
	// only detectable against a wrapped key. Returns (false,
	// ErrWrongPassword) on verification failure; the session stays locked.
	Unlock(ctx context.Context, login, password string) (bool, error)

	// Lock drops the master key from memory and runs all registered lock
	// hooks (the conversation-key cache purge among them). Idempotent.
	Lock()

	// Unlocked reports whether the master key is currently in memory.
	Unlocked() bool

	// Initialized reports whether setup has ever completed on this device.
	Initialized(ctx context.Context) (bool, error)

	// MasterKey returns a copy of the master key, or ErrVaultLocked.
	MasterKey() ([]byte, error)

	// OnLock registers a hook invoked on every Lock.
	OnLock(hook func())
}

// ConversationKeyManager generates, restores, and caches one symmetric key
// per conversation. Raw conversation keys exist only in its in-memory cache;
// everything that leaves the manager is wrapped under the master key.
type ConversationKeyManager interface {
	// CreateConversationKey generates a fresh random key for conversationID,
	// wraps it under the master key, persists the wrapped record (local
	// store, then remote best effort) and caches the raw key. Requires an
	// unlocked vault.
	CreateConversationKey(ctx context.Context, conversationID string) (models.WrappedKeyRecord, error)

	// LoadConversationKey unwraps an externally supplied wrapped key and
	// caches it on success. A failed unwrap (wrong key or tampered record)
	// returns (false, nil) so the caller decides how to surface it.
	// Requires an unlocked vault.
	LoadConversationKey(ctx context.Context, conversationID string, wrapped models.WrappedKey) (bool, error)

	// GetConversationKey returns the raw key for conversationID: from the
	// cache, or restored local-then-remote and unwrapped. Concurrent calls
	// for the same uncached conversation collapse into one restore. Fails
	// with ErrKeyNotFound when no record exists anywhere.
	GetConversationKey(ctx context.Context, conversationID string) ([]byte, error)

	// Purge clears the in-memory key cache. Wired to VaultSession.Lock.
	Purge()
}

// MessageCipher applies authenticated encryption to individual message
// bodies and titles under the owning conversation's key. The conversation ID
// is bound as associated data, so a ciphertext cannot be replayed into
// another conversation.
type MessageCipher interface {
	EncryptMessage(ctx context.Context, conversationID, plaintext string) (models.EncryptedBlob, error)
	DecryptMessage(ctx context.Context, conversationID string, blob models.EncryptedBlob) (string, error)

	// Titles share the conversation key with message bodies but every call
	// uses its own fresh nonce.
	EncryptTitle(ctx context.Context, conversationID, title string) (models.EncryptedBlob, error)
	DecryptTitle(ctx context.Context, conversationID string, blob models.EncryptedBlob) (string, error)
}

// BulkDecryptor decrypts message batches with per-item failure isolation.
type BulkDecryptor interface {
	// DecryptMessages resolves the conversation key once and decrypts all
	// items concurrently. Results keep the input order; an item that fails
	// authentication is marked failed and carries
	// models.DecryptionFailedSentinel instead of aborting the batch. The
	// returned error is non-nil only when the key itself cannot be
	// resolved (locked vault, missing key).
	DecryptMessages(ctx context.Context, conversationID string, items []models.EncryptedMessage) ([]models.DecryptedMessage, error)
}
