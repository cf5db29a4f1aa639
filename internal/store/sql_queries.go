// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder for all server-side queries.
// PostgreSQL uses $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var keyColumns = []string{
	"conversation_id",
	"wrapped_key",
	"wrapping_nonce",
	"key_hash",
	"key_version",
	"algorithm",
	"created_at",
}

func buildCreateUserQuery(login, authHash, encryptionSalt string) (string, []any, error) {
	return psql.Insert("users").
		Columns("login", "auth_hash", "encryption_salt").
		Values(login, authHash, encryptionSalt).
		Suffix("RETURNING user_id, login, auth_hash, encryption_salt, created_at").
		ToSql()
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	return psql.Select("user_id", "login", "auth_hash", "encryption_salt", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildUpsertKeyQuery(userID int64, conversationID, wrappedKey, wrappingNonce, keyHash string, keyVersion int, algorithm string) (string, []any, error) {
	return psql.Insert("conversation_keys").
		Columns("user_id", "conversation_id", "wrapped_key", "wrapping_nonce", "key_hash", "key_version", "algorithm").
		Values(userID, conversationID, wrappedKey, wrappingNonce, keyHash, keyVersion, algorithm).
		Suffix(`ON CONFLICT (user_id, conversation_id) DO UPDATE SET
			wrapped_key    = excluded.wrapped_key,
			wrapping_nonce = excluded.wrapping_nonce,
			key_hash       = excluded.key_hash,
			key_version    = excluded.key_version,
			algorithm      = excluded.algorithm,
			updated_at     = NOW()`).
		ToSql()
}

func buildGetKeyQuery(userID int64, conversationID string) (string, []any, error) {
	return psql.Select(keyColumns...).
		From("conversation_keys").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
}
