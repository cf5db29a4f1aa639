// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildUpsertKeyQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildUpsertKeyQuery(42, "conv-1", "ct", "nonce", "hash", 1, "aes-256-gcm")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 7)
	require.Equal(t, int64(42), args[0])
	require.Equal(t, "conv-1", args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into conversation_keys")
	require.Contains(t, q, "on conflict (user_id, conversation_id)")
	require.Contains(t, q, "do update set")
	require.Contains(t, q, "wrapped_key")
	require.Contains(t, q, "wrapping_nonce")
	require.Contains(t, q, "key_version")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$7")
}

func Test_buildGetKeyQuery_SelectsAllKeyColumns(t *testing.T) {
	query, args, err := buildGetKeyQuery(7, "conv-9")
	require.NoError(t, err)

	// repository tests bind user_id before conversation_id; the chained
	// Where calls keep that order stable
	require.Equal(t, []any{int64(7), "conv-9"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from conversation_keys")
	require.Contains(t, q, "where")
	for _, col := range keyColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildCreateUserQuery_ReturningClause(t *testing.T) {
	query, args, err := buildCreateUserQuery("user@example.com", "hash", "salt")
	require.NoError(t, err)

	require.Len(t, args, 3)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id")
	require.Contains(t, q, "encryption_salt")
}

func Test_buildFindUserByLoginQuery(t *testing.T) {
	query, args, err := buildFindUserByLoginQuery("user@example.com")
	require.NoError(t, err)

	require.Equal(t, []any{"user@example.com"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "login = $1")
}
