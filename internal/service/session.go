// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/quillchat/chatvault/internal/adapter"
	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/models"
)

const minPasswordLength = 8

type vaultSession struct {
	keychain   crypto.KeyChainService
	meta       store.VaultMetaRepository
	keys       store.LocalKeyRepository
	remote     adapter.RemoteKeyStore
	hashDomain string
	log        *logger.Logger

	mu        sync.RWMutex
	masterKey []byte
	unlocked  bool
	login     string
	lockHooks []func()
}

// NewVaultSession builds the locked, possibly uninitialized session.
// hashDomain separates the login auth hash from every other digest derived
// from the master key.
func NewVaultSession(keychain crypto.KeyChainService, meta store.VaultMetaRepository, keys store.LocalKeyRepository, remote adapter.RemoteKeyStore, hashDomain string, log *logger.Logger) VaultSession {
	return &vaultSession{
		keychain:   keychain,
		meta:       meta,
		keys:       keys,
		remote:     remote,
		hashDomain: hashDomain,
		log:        log,
	}
}

// Setup implements [VaultSession].
func (s *vaultSession) Setup(ctx context.Context, login, password string) (bool, error) {
	if len(password) < minPasswordLength {
		return false, fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, minPasswordLength)
	}

	meta, err := s.meta.GetMeta(ctx)
	if err != nil {
		return false, fmt.Errorf("read vault meta: %w", err)
	}
	if meta != nil && meta.Initialized {
		return false, ErrVaultAlreadyInitialized
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return false, fmt.Errorf("generate salt: %w", err)
	}
	masterKey := s.keychain.DeriveMasterKey(password, salt)

	user := models.User{
		Login:          login,
		AuthHash:       base64.StdEncoding.EncodeToString(s.keychain.AuthHash(masterKey, s.hashDomain)),
		EncryptionSalt: base64.StdEncoding.EncodeToString(salt),
	}

	// Registration failure must not block a local-only setup. The key-sync
	// worker retries pending uploads once the account exists.
	if _, err = s.remote.Register(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("remote registration failed, vault continues local-only")
	}

	newMeta := models.VaultMeta{
		Login:          login,
		EncryptionSalt: user.EncryptionSalt,
		Initialized:    true,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.meta.SaveMeta(ctx, newMeta); err != nil {
		return false, fmt.Errorf("save vault meta: %w", err)
	}

	s.setUnlocked(masterKey, login)
	s.log.Info().Str("login", login).Msg("vault initialized and unlocked")
	return true, nil
}

// Unlock implements [VaultSession].
func (s *vaultSession) Unlock(ctx context.Context, login, password string) (bool, error) {
	if s.Unlocked() {
		return true, nil
	}

	meta, err := s.meta.GetMeta(ctx)
	if err != nil {
		return false, fmt.Errorf("read vault meta: %w", err)
	}
	if meta == nil {
		meta, err = s.restoreMeta(ctx, login)
		if err != nil {
			return false, err
		}
	}

	salt, err := base64.StdEncoding.DecodeString(meta.EncryptionSalt)
	if err != nil {
		return false, fmt.Errorf("decode encryption salt: %w", err)
	}
	masterKey := s.keychain.DeriveMasterKey(password, salt)

	// Verify against any existing wrapped record. With an empty key store
	// there is nothing to test the password against, so it is accepted.
	probe, err := s.keys.AnyKey(ctx)
	if err != nil {
		return false, fmt.Errorf("read verification record: %w", err)
	}
	if probe != nil {
		if _, err = s.keychain.UnwrapKey(probe.Key, masterKey); err != nil {
			s.log.Debug().Str("login", meta.Login).Msg("unlock rejected, verification record did not unwrap")
			return false, ErrWrongPassword
		}
	}

	s.remoteLogin(ctx, meta.Login, masterKey)

	s.setUnlocked(masterKey, meta.Login)
	s.log.Info().Str("login", meta.Login).Msg("vault unlocked")
	return true, nil
}

// restoreMeta recovers the vault metadata on a device that has never run
// setup, using the salt stored remotely at registration.
func (s *vaultSession) restoreMeta(ctx context.Context, login string) (*models.VaultMeta, error) {
	if login == "" {
		return nil, ErrVaultNotInitialized
	}

	user, err := s.remote.RequestSalt(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("%w: salt not recoverable: %w", ErrVaultNotInitialized, err)
	}

	meta := &models.VaultMeta{
		Login:          login,
		EncryptionSalt: user.EncryptionSalt,
		Initialized:    true,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.meta.SaveMeta(ctx, *meta); err != nil {
		s.log.Warn().Err(err).Msg("restored vault meta not persisted, unlock continues for this session")
	}
	return meta, nil
}

// remoteLogin refreshes the bearer token so key restores and uploads work.
// An unreachable server leaves the session usable with local keys only.
func (s *vaultSession) remoteLogin(ctx context.Context, login string, masterKey []byte) {
	user := models.User{
		Login:    login,
		AuthHash: base64.StdEncoding.EncodeToString(s.keychain.AuthHash(masterKey, s.hashDomain)),
	}
	if _, err := s.remote.Login(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("remote login failed, vault continues local-only")
	}
}

// Lock implements [VaultSession].
func (s *vaultSession) Lock() {
	s.mu.Lock()
	for i := range s.masterKey {
		s.masterKey[i] = 0
	}
	s.masterKey = nil
	s.unlocked = false
	hooks := make([]func(), len(s.lockHooks))
	copy(hooks, s.lockHooks)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	s.log.Info().Msg("vault locked")
}

// Unlocked implements [VaultSession].
func (s *vaultSession) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked
}

// Initialized implements [VaultSession].
func (s *vaultSession) Initialized(ctx context.Context) (bool, error) {
	meta, err := s.meta.GetMeta(ctx)
	if err != nil {
		return false, fmt.Errorf("read vault meta: %w", err)
	}
	return meta != nil && meta.Initialized, nil
}

// MasterKey implements [VaultSession].
func (s *vaultSession) MasterKey() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.unlocked {
		return nil, ErrVaultLocked
	}
	key := make([]byte, len(s.masterKey))
	copy(key, s.masterKey)
	return key, nil
}

// OnLock implements [VaultSession].
func (s *vaultSession) OnLock(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockHooks = append(s.lockHooks, hook)
}

func (s *vaultSession) setUnlocked(masterKey []byte, login string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masterKey = masterKey
	s.unlocked = true
	s.login = login
}
