// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package server wires and runs the key-store server's transports.
//
// It orchestrates the HTTP and gRPC server lifecycles: startup, OS signal
// handling, and graceful shutdown of every enabled transport.
package server
