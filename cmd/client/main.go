// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Command client is a diagnostic front-end for the vault subsystem. It sets
// up or unlocks a vault against the configured key-store server and runs a
// round-trip encryption check, which is useful when validating a deployment
// without the full chat application.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/quillchat/chatvault/internal/client"
	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	login := flag.String("login", "", "account login")
	password := flag.String("password", "", "account password")
	setup := flag.Bool("setup", false, "initialise a new vault instead of unlocking")
	flag.Parse()

	log := logger.NewLogger("vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	vault, err := client.NewVault(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault")
	}
	defer func() {
		if err := vault.Close(); err != nil {
			log.Error().Err(err).Msg("error closing vault")
		}
	}()

	if err := run(ctx, vault, *login, *password, *setup); err != nil {
		log.Fatal().Err(err).Msg("vault check failed")
	}
}

func run(ctx context.Context, vault *client.Vault, login, password string, setup bool) error {
	var (
		ok  bool
		err error
	)
	if setup {
		ok, err = vault.SetupEncryption(ctx, login, password)
	} else {
		ok, err = vault.UnlockVault(ctx, login, password)
	}
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("vault rejected credentials for %q", login)
	}

	conversationID := uuid.NewString()
	if _, err = vault.CreateConversationKey(ctx, conversationID); err != nil {
		return fmt.Errorf("create conversation key: %w", err)
	}

	blob, err := vault.EncryptMessage(ctx, conversationID, "vault self check")
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	plaintext, err := vault.DecryptMessage(ctx, conversationID, blob)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if plaintext != "vault self check" {
		return fmt.Errorf("round trip mismatch")
	}

	fmt.Fprintln(os.Stdout, "vault OK")
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
