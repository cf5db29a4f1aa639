// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/quillchat/chatvault/internal/config"
	myGRPC "github.com/quillchat/chatvault/internal/handler/grpc"
	"github.com/quillchat/chatvault/internal/logger"
)

// grpcServer runs the gRPC transport. No services are registered on it yet;
// the listener and lifecycle are in place for when the wrapped-key API grows
// a gRPC surface.
type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string
	logger  *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		handler: handler,
		server:  grpc.NewServer(),
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
