// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import (
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
)

// Handler holds the HTTP-facing endpoints of the key-store server.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler creates a Handler backed by the given service layer.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{services: services, logger: logger}
}
