// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package handler aggregates the transport handlers of the key-store server.
package handler

import (
	"github.com/quillchat/chatvault/internal/config"
	"github.com/quillchat/chatvault/internal/handler/grpc"
	"github.com/quillchat/chatvault/internal/handler/http"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
)

// Handlers holds one handler per configured transport.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport with a configured
// address. At least one address must be set.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
