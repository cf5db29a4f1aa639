// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import "errors"

var (
	// ErrVaultNotInitialized is returned when unlock runs before any setup
	// has ever completed for this account.
	ErrVaultNotInitialized = errors.New("vault is not initialized")

	// ErrVaultAlreadyInitialized is returned when setup runs twice.
	ErrVaultAlreadyInitialized = errors.New("vault is already initialized")

	// ErrVaultLocked guards every key and cipher operation. Nothing is a
	// silent no-op while the master key is absent.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrWrongPassword is observable only in unlock, when the derived key
	// fails to unwrap an existing wrapped-key record.
	ErrWrongPassword = errors.New("wrong password")

	// ErrPasswordTooShort rejects passwords under 8 characters before any
	// key derivation happens.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrKeyNotFound means no wrapped-key record exists for a conversation
	// in the local store or the remote store.
	ErrKeyNotFound = errors.New("conversation key not found")

	// ErrEncryptionFailed wraps any failure while sealing plaintext.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed wraps authentication-tag mismatches: corruption,
	// tampering, or a wrong key. Never a partial decode.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidDataProvided is the server-side rejection for requests
	// missing required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongAuthHash is returned when a login presents an auth hash that
	// does not match the stored one.
	ErrWrongAuthHash = errors.New("wrong auth hash")

	// ErrTokenIsExpired is returned when a bearer token is past its expiry.
	ErrTokenIsExpired = errors.New("token is expired")
)
