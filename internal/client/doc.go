// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package client assembles the vault runtime embedded in the chat client.
//
// It wires configuration, the local SQLite key store, the remote key-store
// adapter, the vault services and the background key-sync worker into a
// single Vault facade that the host application calls.
package client
