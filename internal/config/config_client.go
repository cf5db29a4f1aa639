package config

import (
	"fmt"
	"time"
)

// ClientAuth holds client-side authentication settings derived from the
// shared structured config.
type ClientAuth struct {
	// HashDomain is the domain-separation string for the login auth hash.
	HashDomain string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote key-store server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientLocal contains the client's durable key-store settings.
type ClientLocal struct {
	// Path is the SQLite database file path.
	Path string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// KeySyncInterval defines how often the key-sync worker retries pending
	// remote upserts.
	KeySyncInterval time.Duration
}

// ClientConfig is the client-facing configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Auth contains client authentication settings.
	Auth ClientAuth
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Local contains the local key-store settings.
	Local ClientLocal
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Auth: ClientAuth{
			HashDomain: cfg.Auth.HashDomain,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Local: ClientLocal{
			Path: cfg.Storage.Local.Path,
		},
		Workers: ClientWorkers{KeySyncInterval: cfg.Workers.KeySyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
