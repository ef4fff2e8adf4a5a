package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/rpc"
	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/MKhiriev/go-cipher-drop/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcCipherAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCCipherAdapter constructs the gRPC implementation of [CipherAdapter].
// The connection is plaintext and messages use the JSON codec.
func NewGRPCCipherAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CipherAdapter, error) {
	if cfg.GRPCAddress == "" {
		return nil, ErrNoAddress
	}

	conn, err := grpc.NewClient(cfg.GRPCAddress, dialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	return newGRPCCipherAdapter(conn, cfg.RequestTimeout, logger), nil
}

func dialOptions(extra ...grpc.DialOption) []grpc.DialOption {
	return append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.Name)),
	}, extra...)
}

func newGRPCCipherAdapter(conn *grpc.ClientConn, timeout time.Duration, logger *logger.Logger) *grpcCipherAdapter {
	return &grpcCipherAdapter{conn: conn, timeout: timeout, logger: logger}
}

func (g *grpcCipherAdapter) Encrypt(ctx context.Context, text, password string) (string, error) {
	return g.invoke(ctx, rpc.EncryptMethod, text, password)
}

func (g *grpcCipherAdapter) Decrypt(ctx context.Context, token, password string) (string, error) {
	return g.invoke(ctx, rpc.DecryptMethod, token, password)
}

func (g *grpcCipherAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcCipherAdapter) invoke(ctx context.Context, method, text, password string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	ctx = metadata.AppendToOutgoingContext(ctx, rpc.TraceIDKey, utils.NewTraceID())

	var (
		resp    models.CipherResponse
		header  metadata.MD
		trailer metadata.MD
	)
	err := g.conn.Invoke(ctx, method, &models.CipherRequest{Text: text, Password: password}, &resp,
		grpc.Header(&header), grpc.Trailer(&trailer))

	g.logger.Debug().
		Str("method", method).
		Strs("trace_id", header.Get(rpc.TraceIDKey)).
		Err(err).
		Msg("server responded")

	if err != nil {
		return "", mapGRPCError(err, firstValue(trailer, rpc.ErrorCodeKey))
	}

	return resp.Result, nil
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
