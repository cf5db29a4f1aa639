package store

import (
	"context"

	"github.com/quillchat/chatvault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalKeyRepository is the client's durable store for wrapped conversation
// keys. It only ever holds [models.WrappedKeyRecord] values; raw key bytes
// never reach this layer.
type LocalKeyRepository interface {
	// SaveKey upserts a wrapped-key record. pendingRemote marks rows whose
	// remote upsert failed at creation time so the key-sync worker can
	// retry them later.
	SaveKey(ctx context.Context, record models.WrappedKeyRecord, pendingRemote bool) error

	// GetKey returns the record for conversationID, or (nil, nil) when the
	// row does not exist. A missing key is an expected cache miss, not an
	// error.
	GetKey(ctx context.Context, conversationID string) (*models.WrappedKeyRecord, error)

	// AnyKey returns one arbitrary record, or (nil, nil) when the store is
	// empty. Unlock uses it as a verification probe: a master key that can
	// unwrap any existing record is the right one.
	AnyKey(ctx context.Context) (*models.WrappedKeyRecord, error)

	// DeleteKey removes the record for conversationID. Deleting a missing
	// row is a no-op.
	DeleteKey(ctx context.Context, conversationID string) error

	// ListPendingRemote returns all records still awaiting a successful
	// remote upsert.
	ListPendingRemote(ctx context.Context) ([]models.WrappedKeyRecord, error)

	// ClearPendingRemote marks the record for conversationID as durably
	// persisted remotely.
	ClearPendingRemote(ctx context.Context, conversationID string) error
}

// VaultMetaRepository persists the single-row vault metadata: the public KDF
// salt and the initialized flag.
type VaultMetaRepository interface {
	// GetMeta returns the vault metadata, or (nil, nil) when the vault has
	// never been set up on this device.
	GetMeta(ctx context.Context) (*models.VaultMeta, error)

	// SaveMeta writes the vault metadata, replacing any previous row.
	SaveMeta(ctx context.Context, meta models.VaultMeta) error
}
