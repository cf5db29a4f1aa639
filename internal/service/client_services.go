// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"github.com/quillchat/chatvault/internal/adapter"
	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/crypto"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
)

// ClientServices aggregates the vault service layer in dependency order:
// session under everything, key manager above it, ciphers on top.
type ClientServices struct {
	Session VaultSession
	Keys    ConversationKeyManager
	Cipher  MessageCipher
	Bulk    BulkDecryptor
}

// NewClientServices wires the full client service stack over the given
// stores and remote adapter.
func NewClientServices(keychain crypto.KeyChainService, storages *store.ClientStorages, remote adapter.RemoteKeyStore, cfg config.ClientAuth, log *logger.Logger) *ClientServices {
	session := NewVaultSession(keychain, storages.Meta, storages.Keys, remote, cfg.HashDomain, log)
	keys := NewConversationKeyManager(session, keychain, storages.Keys, remote, log)

	return &ClientServices{
		Session: session,
		Keys:    keys,
		Cipher:  NewMessageCipher(keys, keychain),
		Bulk:    NewBulkDecryptor(keys, keychain, log),
	}
}
