package grpc

import (
	"context"

	"github.com/MKhiriev/go-cipher-drop/internal/app"
	"github.com/MKhiriev/go-cipher-drop/internal/rpc"
	"github.com/MKhiriev/go-cipher-drop/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CipherServer is the server API of the cipher.v1.Cipher service.
type CipherServer interface {
	Encrypt(context.Context, *models.CipherRequest) (*models.CipherResponse, error)
	Decrypt(context.Context, *models.CipherRequest) (*models.CipherResponse, error)
}

var cipherServiceDesc = grpc.ServiceDesc{
	ServiceName: rpc.ServiceName,
	HandlerType: (*CipherServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Encrypt",
			Handler:    encryptHandler,
		},
		{
			MethodName: "Decrypt",
			Handler:    decryptHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func encryptHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, rpc.EncryptMethod, CipherServer.Encrypt)
}

func decryptHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, rpc.DecryptMethod, CipherServer.Decrypt)
}

func unaryHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
	fullMethod string,
	call func(CipherServer, context.Context, *models.CipherRequest) (*models.CipherResponse, error),
) (any, error) {
	in := new(models.CipherRequest)
	if err := dec(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, app.MsgInvalidJSON)
	}

	if interceptor == nil {
		return call(srv.(CipherServer), ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return call(srv.(CipherServer), ctx, req.(*models.CipherRequest))
	}

	return interceptor(ctx, in, info, handler)
}
