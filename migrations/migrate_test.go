// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// sqlmock has no expectations set, so goose's own bookkeeping queries fail
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "apply migrations") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	if err := Migrate(nil); err == nil {
		t.Fatal("expected error for nil db, got nil")
	}
}

func TestEmbeddedMigrations_ContainBothTables(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	joined := strings.Join(names, ",")
	for _, want := range []string{"00001_create_users.sql", "00002_create_conversation_keys.sql"} {
		if !strings.Contains(joined, want) {
			t.Errorf("embedded migrations missing %s, have: %s", want, joined)
		}
	}
}
