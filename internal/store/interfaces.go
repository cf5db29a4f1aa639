package store

import (
	"context"

	"github.com/quillchat/chatvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository manages vault accounts on the key-store server.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrLoginAlreadyExists] on a duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account for login, or [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// KeyRepository manages wrapped conversation keys on the key-store server.
// Rows are scoped by (user_id, conversation_id); the server only ever sees
// ciphertext.
type KeyRepository interface {
	// UpsertKey inserts or replaces the wrapped-key row for
	// (userID, record.ConversationID).
	UpsertKey(ctx context.Context, userID int64, record models.WrappedKeyRecord) error

	// GetKey returns the wrapped-key row for (userID, conversationID), or
	// [ErrKeyRecordNotFound].
	GetKey(ctx context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error)
}
