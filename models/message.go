// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package models

// DecryptionFailedSentinel replaces the content of a batch item whose
// ciphertext could not be authenticated. One corrupted row must not hide the
// rest of a conversation, so the batch substitutes this marker and continues.
const DecryptionFailedSentinel = "[Decryption failed]"

// EncryptedBlob is the AEAD output of a single encrypt call: one message body
// or one title. Ciphertext and nonce are standard base64; the nonce decodes
// to 12 bytes and is never reused with the same key.
type EncryptedBlob struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// EncryptedMessage is one item of a bulk-decryption request, as read from the
// caller's message storage.
type EncryptedMessage struct {
	ID   string        `json:"id"`
	Blob EncryptedBlob `json:"blob"`
}

// DecryptedMessage is one item of a bulk-decryption result. Results keep the
// input order. When Failed is true, Content holds DecryptionFailedSentinel.
type DecryptedMessage struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Failed  bool   `json:"failed"`
}
