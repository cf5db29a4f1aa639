// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package models

import "time"

// User represents a vault account on the remote key store. The server never
// sees key material: EncryptionSalt is public, AuthHash is a one-way digest
// derived from the master key, and wrapped keys are opaque ciphertext.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Persistence-layer only, not exposed via JSON.
	UserID int64 `json:"-"`

	// Login is the unique account identifier used during authentication.
	Login string `json:"login"`

	// AuthHash is the base64 SHA-256 digest of the master key with a
	// domain-separating salt. The server compares it at login but cannot
	// recover the master key from it.
	AuthHash string `json:"auth_hash,omitempty"`

	// EncryptionSalt is the base64 per-user KDF salt. Not secret; stored
	// server-side so another device can re-derive the master key.
	EncryptionSalt string `json:"encryption_salt,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the database table backing the User model.
func (u User) TableName() string {
	return "users"
}
