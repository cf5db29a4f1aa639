// Package config loads and merges chatvault configuration from environment
// variables, command-line flags, and an optional JSON file. Later sources
// fill in fields the earlier ones left zero-valued (mergo merge).
//
// The main entry points are [GetStructuredConfig] for server/runtime
// configuration and [GetClientConfig] for the client-specific view.
package config
