// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/internal/utils"
	"github.com/quillchat/chatvault/models"
)

type authService struct {
	repo store.UserRepository
	cfg  config.Auth
	log  *logger.Logger
}

// NewAuthService builds the account service over the user repository.
func NewAuthService(repo store.UserRepository, cfg config.Auth, log *logger.Logger) AuthService {
	return &authService{repo: repo, cfg: cfg, log: log}
}

// RegisterUser implements [AuthService].
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.AuthHash == "" || user.EncryptionSalt == "" {
		return models.User{}, fmt.Errorf("%w: login, auth hash and encryption salt are required", ErrInvalidDataProvided)
	}

	created, err := a.repo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	a.log.Info().Int64("user_id", created.UserID).Str("login", created.Login).Msg("user registered")
	return created, nil
}

// Login implements [AuthService]. The hash comparison is constant-time so a
// login probe learns nothing from response timing.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.AuthHash == "" {
		return models.User{}, fmt.Errorf("%w: login and auth hash are required", ErrInvalidDataProvided)
	}

	found, err := a.repo.FindUserByLogin(ctx, user.Login)
	if err != nil {
		return models.User{}, err
	}

	if subtle.ConstantTimeCompare([]byte(found.AuthHash), []byte(user.AuthHash)) != 1 {
		return models.User{}, ErrWrongAuthHash
	}

	return found, nil
}

// Salt implements [AuthService].
func (a *authService) Salt(ctx context.Context, login string) (models.User, error) {
	if login == "" {
		return models.User{}, fmt.Errorf("%w: login is required", ErrInvalidDataProvided)
	}

	found, err := a.repo.FindUserByLogin(ctx, login)
	if err != nil {
		return models.User{}, err
	}

	return models.User{Login: found.Login, EncryptionSalt: found.EncryptionSalt}, nil
}

// CreateToken implements [AuthService].
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return utils.GenerateJWTToken(a.cfg.TokenIssuer, user.UserID, a.cfg.TokenDuration, a.cfg.TokenSignKey)
}

// ParseToken implements [AuthService].
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	}
	if err != nil {
		return models.Token{}, err
	}
	return token, nil
}
