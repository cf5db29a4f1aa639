// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package models

import "time"

const (
	// AlgorithmAESGCM identifies the wrapping and content cipher used by the
	// current key version. Stored alongside every persisted record so future
	// versions can migrate old rows.
	AlgorithmAESGCM = "aes-256-gcm"

	// CurrentKeyVersion is the key_version written for newly wrapped keys.
	CurrentKeyVersion = 1
)

// WrappedKey is a conversation key encrypted under the master key.
// Both fields are standard base64 so the value is safe to persist locally
// and to ship to the remote key store unchanged.
type WrappedKey struct {
	// Ciphertext is the AEAD output (ciphertext plus 16-byte auth tag).
	Ciphertext string `json:"ciphertext"`

	// Nonce is the 12-byte wrapping nonce, unique per wrap operation.
	Nonce string `json:"nonce"`
}

// WrappedKeyRecord is the durable form of a conversation key. It is the only
// representation of a conversation key that ever crosses a storage boundary;
// raw key bytes stay in client memory.
type WrappedKeyRecord struct {
	// ConversationID identifies the conversation this key belongs to.
	ConversationID string `json:"conversation_id"`

	// Key holds the wrapped key material.
	Key WrappedKey `json:"key"`

	// KeyHash is the hex SHA-256 fingerprint of the raw key bytes. It is not
	// secret and is used only for server-side duplicate and consistency
	// checks, never as a credential.
	KeyHash string `json:"key_hash"`

	// KeyVersion tags the wrapping scheme for forward compatibility.
	KeyVersion int `json:"key_version"`

	// Algorithm names the cipher the key was wrapped with.
	Algorithm string `json:"algorithm"`

	// CreatedAt is set by the store when the record is first persisted.
	CreatedAt time.Time `json:"created_at"`
}
