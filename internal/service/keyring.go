// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quillchat/chatvault/internal/adapter"
	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/models"
)

type conversationKeyManager struct {
	session  VaultSession
	keychain crypto.KeyChainService
	local    store.LocalKeyRepository
	remote   adapter.RemoteKeyStore
	cache    *keyCache
	restores singleflight.Group
	log      *logger.Logger
}

// NewConversationKeyManager wires the key manager and registers its cache
// purge on the session's lock.
func NewConversationKeyManager(session VaultSession, keychain crypto.KeyChainService, local store.LocalKeyRepository, remote adapter.RemoteKeyStore, log *logger.Logger) ConversationKeyManager {
	m := &conversationKeyManager{
		session:  session,
		keychain: keychain,
		local:    local,
		remote:   remote,
		cache:    newKeyCache(defaultKeyCacheSize),
		log:      log,
	}
	session.OnLock(m.Purge)
	return m
}

// CreateConversationKey implements [ConversationKeyManager].
func (m *conversationKeyManager) CreateConversationKey(ctx context.Context, conversationID string) (models.WrappedKeyRecord, error) {
	masterKey, err := m.session.MasterKey()
	if err != nil {
		return models.WrappedKeyRecord{}, err
	}

	raw, err := m.keychain.GenerateConversationKey()
	if err != nil {
		return models.WrappedKeyRecord{}, fmt.Errorf("generate conversation key: %w", err)
	}
	wrapped, err := m.keychain.WrapKey(raw, masterKey)
	if err != nil {
		return models.WrappedKeyRecord{}, fmt.Errorf("wrap conversation key: %w", err)
	}

	record := models.WrappedKeyRecord{
		ConversationID: conversationID,
		Key:            wrapped,
		KeyHash:        m.keychain.Fingerprint(raw),
		KeyVersion:     models.CurrentKeyVersion,
		Algorithm:      models.AlgorithmAESGCM,
		CreatedAt:      time.Now().UTC(),
	}

	m.persist(ctx, record)
	m.cache.Add(conversationID, raw)

	return record, nil
}

// persist stores the wrapped record remotely and locally. Neither failure
// aborts key creation: the raw key stays cached for this session, and rows
// whose remote upsert failed are flagged for the key-sync worker.
func (m *conversationKeyManager) persist(ctx context.Context, record models.WrappedKeyRecord) {
	pendingRemote := false
	if err := m.remote.UpsertKey(ctx, record); err != nil {
		pendingRemote = true
		m.log.Warn().Err(err).Str("conversation_id", record.ConversationID).Msg("remote key upsert failed, will retry")
	}

	if err := m.local.SaveKey(ctx, record, pendingRemote); err != nil {
		m.log.Warn().Err(err).Str("conversation_id", record.ConversationID).Msg("local key save failed, key usable for this session only")
	}
}

// LoadConversationKey implements [ConversationKeyManager].
func (m *conversationKeyManager) LoadConversationKey(ctx context.Context, conversationID string, wrapped models.WrappedKey) (bool, error) {
	masterKey, err := m.session.MasterKey()
	if err != nil {
		return false, err
	}

	raw, err := m.keychain.UnwrapKey(wrapped, masterKey)
	if err != nil {
		m.log.Debug().Str("conversation_id", conversationID).Msg("wrapped key did not unwrap")
		return false, nil
	}

	m.cache.Add(conversationID, raw)
	return true, nil
}

// GetConversationKey implements [ConversationKeyManager].
func (m *conversationKeyManager) GetConversationKey(ctx context.Context, conversationID string) ([]byte, error) {
	if !m.session.Unlocked() {
		return nil, ErrVaultLocked
	}

	if key, ok := m.cache.Get(conversationID); ok {
		return key, nil
	}

	key, err, _ := m.restores.Do(conversationID, func() (any, error) {
		// A concurrent caller may have finished the restore while this one
		// waited on the flight group.
		if key, ok := m.cache.Get(conversationID); ok {
			return key, nil
		}
		return m.restore(ctx, conversationID)
	})
	if err != nil {
		return nil, err
	}
	return key.([]byte), nil
}

// restore fetches the wrapped record local-first, falls back to the remote
// store with a local write-back, unwraps, and caches the raw key.
func (m *conversationKeyManager) restore(ctx context.Context, conversationID string) ([]byte, error) {
	record, err := m.local.GetKey(ctx, conversationID)
	if err != nil {
		m.log.Warn().Err(err).Str("conversation_id", conversationID).Msg("local key lookup failed, trying remote")
	}

	if record == nil {
		remote, err := m.remote.GetKey(ctx, conversationID)
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, conversationID)
		}
		if err != nil {
			return nil, fmt.Errorf("remote key lookup: %w", err)
		}
		record = &remote

		if err = m.local.SaveKey(ctx, remote, false); err != nil {
			m.log.Warn().Err(err).Str("conversation_id", conversationID).Msg("write-back of restored key failed")
		}
	}

	masterKey, err := m.session.MasterKey()
	if err != nil {
		return nil, err
	}
	raw, err := m.keychain.UnwrapKey(record.Key, masterKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap restored key: %w", ErrDecryptionFailed, err)
	}

	m.cache.Add(conversationID, raw)
	return raw, nil
}

// Purge implements [ConversationKeyManager].
func (m *conversationKeyManager) Purge() {
	m.cache.Purge()
}
