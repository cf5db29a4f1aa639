// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package adapter provides transport-layer abstractions for communicating
// with the chatvault key-store server.
//
// The primary abstraction is [RemoteKeyStore], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPKeyStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/quillchat/chatvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_keystore_mock.go -package=mock

// RemoteKeyStore defines transport-agnostic communication with the remote
// key-store server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// The remote store only ever receives wrapped key material and public vault
// metadata; raw keys never cross this boundary.
type RemoteKeyStore interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates the vault account on the server, storing the public
	// KDF salt and the auth hash. On success it stores the returned bearer
	// token via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// RequestSalt fetches the encryption salt stored for user.Login at
	// registration. The salt is needed to re-derive the master key on a
	// fresh device before login can compute the auth hash.
	RequestSalt(ctx context.Context, login string) (models.User, error)

	// Login authenticates with the pre-computed auth hash. On success it
	// stores the returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// UpsertKey stores (or replaces) the wrapped-key record for the
	// authenticated user and record.ConversationID.
	UpsertKey(ctx context.Context, record models.WrappedKeyRecord) error

	// GetKey fetches the wrapped-key record for the authenticated user and
	// conversationID. Returns [ErrNotFound] (wrapped) when no row exists.
	GetKey(ctx context.Context, conversationID string) (models.WrappedKeyRecord, error)
}
