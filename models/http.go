// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package models

// UpsertKeyRequest is the body of PUT /api/keys/{conversationID}. The userID
// scoping the row comes from the bearer token, never from the body.
type UpsertKeyRequest struct {
	WrappedKey    string `json:"wrapped_key"`
	WrappingNonce string `json:"wrapping_nonce"`
	KeyHash       string `json:"key_hash"`
	KeyVersion    int    `json:"key_version"`
	Algorithm     string `json:"algorithm"`
}

// KeyResponse is the body of GET /api/keys/{conversationID}.
type KeyResponse struct {
	ConversationID string `json:"conversation_id"`
	WrappedKey     string `json:"wrapped_key"`
	WrappingNonce  string `json:"wrapping_nonce"`
	KeyHash        string `json:"key_hash"`
	KeyVersion     int    `json:"key_version"`
	Algorithm      string `json:"algorithm"`
}

// SaltResponse is the body of GET /api/user/salt.
type SaltResponse struct {
	Login          string `json:"login"`
	EncryptionSalt string `json:"encryption_salt"`
}

// ErrorResponse is the JSON error body returned by all server handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
