// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/mock"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/models"
)

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "chatvault",
	TokenDuration: time.Hour,
	HashDomain:    "chatvault-auth-v1",
}

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAuthConfig, logger.Nop()), repo
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{Login: "user@example.com", AuthHash: "aGFzaA==", EncryptionSalt: "c2FsdA=="}
	repo.EXPECT().CreateUser(ctx, user).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 42
			return u, nil
		})

	created, err := svc.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	cases := []models.User{
		{AuthHash: "aGFzaA==", EncryptionSalt: "c2FsdA=="},
		{Login: "user@example.com", EncryptionSalt: "c2FsdA=="},
		{Login: "user@example.com", AuthHash: "aGFzaA=="},
	}
	for _, user := range cases {
		_, err := svc.RegisterUser(ctx, user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 42, Login: "user@example.com", AuthHash: "aGFzaA==", EncryptionSalt: "c2FsdA=="}
	repo.EXPECT().FindUserByLogin(ctx, "user@example.com").Return(stored, nil)

	found, err := svc.Login(ctx, models.User{Login: "user@example.com", AuthHash: "aGFzaA=="})
	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)
}

func TestAuthService_Login_WrongAuthHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 42, Login: "user@example.com", AuthHash: "aGFzaA=="}
	repo.EXPECT().FindUserByLogin(ctx, "user@example.com").Return(stored, nil)

	_, err := svc.Login(ctx, models.User{Login: "user@example.com", AuthHash: "b3RoZXI="})
	assert.ErrorIs(t, err, ErrWrongAuthHash)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByLogin(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "nobody@example.com", AuthHash: "aGFzaA=="})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Salt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 42, Login: "user@example.com", AuthHash: "aGFzaA==", EncryptionSalt: "c2FsdA=="}
	repo.EXPECT().FindUserByLogin(ctx, "user@example.com").Return(stored, nil)

	salt, err := svc.Salt(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", salt.EncryptionSalt)
	// Salt is the unauthenticated lookup: it must not leak the auth hash.
	assert.Empty(t, salt.AuthHash)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	shortLived := testAuthConfig
	shortLived.TokenDuration = -time.Minute
	svc := NewAuthService(repo, shortLived, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}
