// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package client

import (
	"context"
	"fmt"

	"github.com/quillchat/chatvault/internal/adapter"
	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/internal/workers"
	"github.com/quillchat/chatvault/models"
)

// Vault is the embedding surface of the encryption subsystem. The host chat
// application holds one Vault per device and calls it for every encrypt,
// decrypt and key-management operation.
type Vault struct {
	services *service.ClientServices
	syncJob  *workers.KeySyncWorker
	db       *store.ClientDB
	logger   *logger.Logger
}

// NewVault wires the full client vault stack from configuration: local
// SQLite key store, remote key-store adapter, vault services and the
// key-sync retry worker. The worker starts immediately; Close stops it.
func NewVault(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Vault, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Local, log)
	if err != nil {
		return nil, fmt.Errorf("open local key store: %w", err)
	}

	storages := store.NewClientStorages(db, log)
	remote := adapter.NewHTTPKeyStore(adapter.HTTPKeyStoreConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	keychain := crypto.NewKeyChainService()
	services := service.NewClientServices(keychain, storages, remote, cfg.Auth, log)

	syncJob := workers.NewKeySyncWorker(storages.Keys, remote, cfg.Workers.KeySyncInterval, log)
	workers.NewWorkers(syncJob).Run()

	return &Vault{
		services: services,
		syncJob:  syncJob,
		db:       db,
		logger:   log,
	}, nil
}

// Close stops the background sync worker and closes the local store. The
// vault locks first so no key material outlives the process teardown.
func (v *Vault) Close() error {
	v.services.Session.Lock()
	v.syncJob.Stop()
	return v.db.Close()
}

// SetupEncryption initialises the vault for an account: derives the master
// key from the password, registers the account remotely and unlocks.
func (v *Vault) SetupEncryption(ctx context.Context, login, password string) (bool, error) {
	return v.services.Session.Setup(ctx, login, password)
}

// UnlockVault unlocks an initialised vault with the account password. On a
// fresh device it restores the KDF salt from the server first.
func (v *Vault) UnlockVault(ctx context.Context, login, password string) (bool, error) {
	return v.services.Session.Unlock(ctx, login, password)
}

// LockVault wipes the master key and all cached conversation keys.
func (v *Vault) LockVault() {
	v.services.Session.Lock()
}

// VaultUnlocked reports whether encrypt and decrypt operations are possible.
func (v *Vault) VaultUnlocked() bool {
	return v.services.Session.Unlocked()
}

// VaultInitialized reports whether this device already holds vault metadata.
func (v *Vault) VaultInitialized(ctx context.Context) (bool, error) {
	return v.services.Session.Initialized(ctx)
}

// CreateConversationKey generates, wraps and persists a fresh key for a
// conversation and returns its wrapped record.
func (v *Vault) CreateConversationKey(ctx context.Context, conversationID string) (models.WrappedKeyRecord, error) {
	return v.services.Keys.CreateConversationKey(ctx, conversationID)
}

// LoadConversationKey unwraps and caches an externally supplied wrapped key.
// It returns false when the key does not unwrap under the current master key.
func (v *Vault) LoadConversationKey(ctx context.Context, conversationID string, wrapped models.WrappedKey) (bool, error) {
	return v.services.Keys.LoadConversationKey(ctx, conversationID, wrapped)
}

// EncryptMessage encrypts a message body for a conversation.
func (v *Vault) EncryptMessage(ctx context.Context, conversationID, plaintext string) (models.EncryptedBlob, error) {
	return v.services.Cipher.EncryptMessage(ctx, conversationID, plaintext)
}

// DecryptMessage decrypts a single message body.
func (v *Vault) DecryptMessage(ctx context.Context, conversationID string, blob models.EncryptedBlob) (string, error) {
	return v.services.Cipher.DecryptMessage(ctx, conversationID, blob)
}

// DecryptMessages decrypts a batch of messages, isolating per-item failures
// behind the decryption-failed placeholder.
func (v *Vault) DecryptMessages(ctx context.Context, conversationID string, items []models.EncryptedMessage) ([]models.DecryptedMessage, error) {
	return v.services.Bulk.DecryptMessages(ctx, conversationID, items)
}

// EncryptTitle encrypts a conversation title.
func (v *Vault) EncryptTitle(ctx context.Context, conversationID, title string) (models.EncryptedBlob, error) {
	return v.services.Cipher.EncryptTitle(ctx, conversationID, title)
}

// DecryptTitle decrypts a conversation title.
func (v *Vault) DecryptTitle(ctx context.Context, conversationID string, blob models.EncryptedBlob) (string, error) {
	return v.services.Cipher.DecryptTitle(ctx, conversationID, blob)
}
