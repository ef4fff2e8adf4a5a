// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/service"
	"github.com/MKhiriev/go-cipher-drop/models"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
//
// Parameters:
//   - services: application service layer used by gRPC method handlers.
//   - logger: structured logger used for transport diagnostics.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register adds the cipher service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&cipherServiceDesc, h)
}

// Interceptors returns the unary interceptors the server must install, in
// order.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withTraceID, h.withLogging}
}

// Encrypt implements [CipherServer].
func (h *Handler) Encrypt(ctx context.Context, req *models.CipherRequest) (*models.CipherResponse, error) {
	token, err := h.services.CipherService.Encrypt(ctx, req.Text, req.Password)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	return &models.CipherResponse{Result: token}, nil
}

// Decrypt implements [CipherServer].
func (h *Handler) Decrypt(ctx context.Context, req *models.CipherRequest) (*models.CipherResponse, error) {
	plaintext, err := h.services.CipherService.Decrypt(ctx, req.Text, req.Password)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	return &models.CipherResponse{Result: plaintext}, nil
}
