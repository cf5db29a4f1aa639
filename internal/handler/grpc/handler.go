// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

// Package grpc holds the gRPC transport handler of the key-store server.
// The wrapped-key service is served over HTTP today; this handler exists so
// a gRPC surface can be added without reshaping the wiring.
package grpc

import (
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
)

// Handler is the root gRPC transport handler. It carries the service layer
// and logger that method handlers delegate to.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a Handler over the given service container.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
