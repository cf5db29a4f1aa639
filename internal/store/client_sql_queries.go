// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package store

const (
	createVaultMetaTable = `
		CREATE TABLE IF NOT EXISTS vault_meta (
			id              INTEGER PRIMARY KEY CHECK (id = 1),
			login           TEXT NOT NULL,
			encryption_salt TEXT NOT NULL,
			initialized     INTEGER NOT NULL DEFAULT 0,
			created_at      TIMESTAMP NOT NULL
		);`

	createConversationKeysTable = `
		CREATE TABLE IF NOT EXISTS conversation_keys (
			conversation_id TEXT PRIMARY KEY,
			wrapped_key     TEXT NOT NULL,
			wrapping_nonce  TEXT NOT NULL,
			key_hash        TEXT NOT NULL,
			key_version     INTEGER NOT NULL,
			algorithm       TEXT NOT NULL,
			pending_remote  INTEGER NOT NULL DEFAULT 0,
			created_at      TIMESTAMP NOT NULL
		);`

	upsertLocalKey = `
		INSERT INTO conversation_keys (
			conversation_id,
			wrapped_key,
			wrapping_nonce,
			key_hash,
			key_version,
			algorithm,
			pending_remote,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (conversation_id) DO UPDATE SET
			wrapped_key    = excluded.wrapped_key,
			wrapping_nonce = excluded.wrapping_nonce,
			key_hash       = excluded.key_hash,
			key_version    = excluded.key_version,
			algorithm      = excluded.algorithm,
			pending_remote = excluded.pending_remote;`

	getLocalKey = `
		SELECT
			conversation_id,
			wrapped_key,
			wrapping_nonce,
			key_hash,
			key_version,
			algorithm,
			created_at
		FROM conversation_keys
		WHERE conversation_id = $1;`

	getAnyLocalKey = `
		SELECT
			conversation_id,
			wrapped_key,
			wrapping_nonce,
			key_hash,
			key_version,
			algorithm,
			created_at
		FROM conversation_keys
		ORDER BY created_at
		LIMIT 1;`

	deleteLocalKey = `
		DELETE FROM conversation_keys
		WHERE conversation_id = $1;`

	listPendingRemoteKeys = `
		SELECT
			conversation_id,
			wrapped_key,
			wrapping_nonce,
			key_hash,
			key_version,
			algorithm,
			created_at
		FROM conversation_keys
		WHERE pending_remote = 1;`

	clearPendingRemoteKey = `
		UPDATE conversation_keys
		SET pending_remote = 0
		WHERE conversation_id = $1;`

	getVaultMeta = `
		SELECT login, encryption_salt, initialized, created_at
		FROM vault_meta
		WHERE id = 1;`

	upsertVaultMeta = `
		INSERT INTO vault_meta (id, login, encryption_salt, initialized, created_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			login           = excluded.login,
			encryption_salt = excluded.encryption_salt,
			initialized     = excluded.initialized;`
)
