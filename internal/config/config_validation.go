// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server startup invariants.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Local.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.KeySyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Auth.HashDomain == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
