// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
)

// Services aggregates the server-side service layer.
type Services struct {
	Auth AuthService
	Keys KeyService
}

// NewServices wires the server services to the given repositories.
func NewServices(repos *store.Repositories, cfg config.Auth, log *logger.Logger) *Services {
	return &Services{
		Auth: NewAuthService(repos.Users, cfg, log),
		Keys: NewKeyService(repos.Keys, log),
	}
}
