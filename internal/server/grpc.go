package server

import (
	"errors"
	"net"

	"github.com/MKhiriev/go-cipher-drop/internal/config"
	myGRPC "github.com/MKhiriev/go-cipher-drop/internal/handler/grpc"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.Interceptors()...))
	handler.Register(server)

	return &grpcServer{
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) listenAndServe() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	return g.serveOn(listener)
}

// serveOn returns nil once the server has been stopped.
func (g *grpcServer) serveOn(listener net.Listener) error {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
