// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/mock"
	"github.com/quillchat/chatvault/models"
)

const testHashDomain = "chatvault-auth-v1"

// newTestSession wires a session over the real key chain and mocked stores.
// Real crypto keeps the unlock verification path honest.
func newTestSession(t *testing.T, ctrl *gomock.Controller) (VaultSession, *mock.MockVaultMetaRepository, *mock.MockLocalKeyRepository, *mock.MockRemoteKeyStore) {
	t.Helper()
	meta := mock.NewMockVaultMetaRepository(ctrl)
	keys := mock.NewMockLocalKeyRepository(ctrl)
	remote := mock.NewMockRemoteKeyStore(ctrl)

	session := NewVaultSession(crypto.NewKeyChainService(), meta, keys, remote, testHashDomain, logger.Nop())
	return session, meta, keys, remote
}

// initializedMeta builds the metadata row Setup would have written, plus one
// wrapped record the unlock verification can probe against.
func initializedMeta(t *testing.T, password string) (*models.VaultMeta, *models.WrappedKeyRecord) {
	t.Helper()
	keychain := crypto.NewKeyChainService()

	salt, err := keychain.GenerateSalt()
	require.NoError(t, err)
	masterKey := keychain.DeriveMasterKey(password, salt)

	raw, err := keychain.GenerateConversationKey()
	require.NoError(t, err)
	wrapped, err := keychain.WrapKey(raw, masterKey)
	require.NoError(t, err)

	meta := &models.VaultMeta{
		Login:          "user@example.com",
		EncryptionSalt: base64.StdEncoding.EncodeToString(salt),
		Initialized:    true,
		CreatedAt:      time.Now().UTC(),
	}
	record := &models.WrappedKeyRecord{
		ConversationID: "conv-1",
		Key:            wrapped,
		KeyHash:        keychain.Fingerprint(raw),
		KeyVersion:     models.CurrentKeyVersion,
		Algorithm:      models.AlgorithmAESGCM,
	}
	return meta, record
}

func TestVaultSession_Setup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, _, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	meta.EXPECT().GetMeta(ctx).Return(nil, nil)
	remote.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "user@example.com", u.Login)
			assert.NotEmpty(t, u.AuthHash)
			salt, err := base64.StdEncoding.DecodeString(u.EncryptionSalt)
			require.NoError(t, err)
			assert.Len(t, salt, 16)
			return u, nil
		})
	meta.EXPECT().SaveMeta(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.VaultMeta) error {
			assert.True(t, m.Initialized)
			assert.Equal(t, "user@example.com", m.Login)
			return nil
		})

	ok, err := session.Setup(ctx, "user@example.com", "correcthorse123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, session.Unlocked())

	masterKey, err := session.MasterKey()
	require.NoError(t, err)
	assert.Len(t, masterKey, 32)
}

func TestVaultSession_Setup_PasswordTooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, _, _, _ := newTestSession(t, ctrl)

	ok, err := session.Setup(context.Background(), "user@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.False(t, ok)
	assert.False(t, session.Unlocked())
}

func TestVaultSession_Setup_AlreadyInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, _, _ := newTestSession(t, ctrl)
	ctx := context.Background()

	existing, _ := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(existing, nil)

	ok, err := session.Setup(ctx, "user@example.com", "correcthorse123")
	assert.ErrorIs(t, err, ErrVaultAlreadyInitialized)
	assert.False(t, ok)
}

func TestVaultSession_Setup_RemoteRegistrationFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, _, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	meta.EXPECT().GetMeta(ctx).Return(nil, nil)
	remote.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, errors.New("server unreachable"))
	meta.EXPECT().SaveMeta(ctx, gomock.Any()).Return(nil)

	ok, err := session.Setup(ctx, "user@example.com", "correcthorse123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, session.Unlocked())
}

func TestVaultSession_Unlock_CorrectPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, keys, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	existing, record := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(existing, nil)
	keys.EXPECT().AnyKey(ctx).Return(record, nil)
	remote.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, nil)

	ok, err := session.Unlock(ctx, "", "correcthorse123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, session.Unlocked())
}

func TestVaultSession_Unlock_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, keys, _ := newTestSession(t, ctrl)
	ctx := context.Background()

	existing, record := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(existing, nil)
	keys.EXPECT().AnyKey(ctx).Return(record, nil)

	ok, err := session.Unlock(ctx, "", "wrongpassword")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, ok)
	assert.False(t, session.Unlocked())

	_, err = session.MasterKey()
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestVaultSession_Unlock_EmptyKeyStoreAcceptsAnyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, keys, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	existing, _ := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(existing, nil)
	keys.EXPECT().AnyKey(ctx).Return(nil, nil)
	remote.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, nil)

	ok, err := session.Unlock(ctx, "", "anythinggoes99")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVaultSession_Unlock_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, _, _ := newTestSession(t, ctrl)
	ctx := context.Background()

	meta.EXPECT().GetMeta(ctx).Return(nil, nil)

	ok, err := session.Unlock(ctx, "", "correcthorse123")
	assert.ErrorIs(t, err, ErrVaultNotInitialized)
	assert.False(t, ok)
}

func TestVaultSession_Unlock_FreshDeviceRestoresSaltFromRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, keys, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	existing, _ := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(nil, nil)
	remote.EXPECT().RequestSalt(ctx, "user@example.com").Return(models.User{
		Login:          "user@example.com",
		EncryptionSalt: existing.EncryptionSalt,
	}, nil)
	meta.EXPECT().SaveMeta(ctx, gomock.Any()).Return(nil)
	keys.EXPECT().AnyKey(ctx).Return(nil, nil)
	remote.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, nil)

	ok, err := session.Unlock(ctx, "user@example.com", "correcthorse123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVaultSession_Unlock_RemoteLoginFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, keys, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	existing, record := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(existing, nil)
	keys.EXPECT().AnyKey(ctx).Return(record, nil)
	remote.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, errors.New("server unreachable"))

	ok, err := session.Unlock(ctx, "", "correcthorse123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVaultSession_Lock_DropsKeyAndRunsHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, _, remote := newTestSession(t, ctrl)
	ctx := context.Background()

	meta.EXPECT().GetMeta(ctx).Return(nil, nil)
	remote.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, nil)
	meta.EXPECT().SaveMeta(ctx, gomock.Any()).Return(nil)

	_, err := session.Setup(ctx, "user@example.com", "correcthorse123")
	require.NoError(t, err)

	hookCalls := 0
	session.OnLock(func() { hookCalls++ })

	session.Lock()
	assert.False(t, session.Unlocked())
	assert.Equal(t, 1, hookCalls)

	_, err = session.MasterKey()
	assert.ErrorIs(t, err, ErrVaultLocked)

	// Idempotent: a second lock reruns hooks against an already empty state.
	session.Lock()
	assert.Equal(t, 2, hookCalls)
}

func TestVaultSession_Initialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	session, meta, _, _ := newTestSession(t, ctrl)
	ctx := context.Background()

	meta.EXPECT().GetMeta(ctx).Return(nil, nil)
	initialized, err := session.Initialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	existing, _ := initializedMeta(t, "correcthorse123")
	meta.EXPECT().GetMeta(ctx).Return(existing, nil)
	initialized, err = session.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)
}
