package store

import (
	"github.com/quillchat/chatvault/internal/logger"
)

// ClientStorages aggregates all client-side repositories over one SQLite
// connection.
type ClientStorages struct {
	Keys LocalKeyRepository
	Meta VaultMetaRepository
}

// NewClientStorages wires the local repositories to the given database.
func NewClientStorages(db *ClientDB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Keys: NewLocalKeyRepository(db, log),
		Meta: NewVaultMetaRepository(db, log),
	}
}
