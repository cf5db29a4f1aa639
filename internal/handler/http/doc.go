// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package http exposes the key-store server over HTTP: account
// registration, login, public salt lookup, and wrapped-key upsert/get.
// All key payloads are opaque ciphertext; the server never sees plaintext
// key material.
package http
