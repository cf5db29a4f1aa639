// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package models

import "time"

// VaultMeta is the single-row local record marking that the vault has been
// set up on this device. It carries the public KDF salt and the initialized
// flag, never key material.
type VaultMeta struct {
	// Login identifies the account on the remote key store.
	Login string `json:"login"`

	// EncryptionSalt is the base64 per-user KDF salt.
	EncryptionSalt string `json:"encryption_salt"`

	// Initialized is true once Setup has completed on any device.
	Initialized bool `json:"initialized"`

	// CreatedAt is the time Setup first ran.
	CreatedAt time.Time `json:"created_at"`
}
