// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"context"

	"github.com/quillchat/chatvault/models"
)

// AuthService is the server-side account service. The server stores only the
// public KDF salt and a one-way auth hash; it can verify a login but never
// derive key material.
type AuthService interface {
	// RegisterUser validates and persists a new account.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the presented auth hash against the stored one.
	// Returns ErrWrongAuthHash on mismatch.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Salt returns the public login and encryption salt for an account, the
	// one piece of registration data readable without authentication.
	Salt(ctx context.Context, login string) (models.User, error)

	// CreateToken issues a signed bearer token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a bearer token and extracts the user ID.
	// Returns ErrTokenIsExpired (wrapped) for expired tokens.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// KeyService is the server-side wrapped-key store. Records are opaque
// ciphertext scoped by (userID, conversationID).
type KeyService interface {
	// UpsertKey validates and stores (or replaces) a wrapped-key record.
	UpsertKey(ctx context.Context, userID int64, record models.WrappedKeyRecord) error

	// GetKey returns the record for (userID, conversationID), or
	// store.ErrKeyRecordNotFound.
	GetKey(ctx context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error)
}
