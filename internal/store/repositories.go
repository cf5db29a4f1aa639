package store

import (
	"github.com/quillchat/chatvault/internal/logger"
)

// Repositories aggregates all server-side repositories over one PostgreSQL
// connection.
type Repositories struct {
	Users UserRepository
	Keys  KeyRepository
}

// NewRepositories wires the server repositories to the given database.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users: NewUserRepository(db, log),
		Keys:  NewKeyRepository(db, log),
	}
}
