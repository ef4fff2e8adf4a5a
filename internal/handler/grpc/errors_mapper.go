package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cipher-drop/internal/app"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/rpc"
	"github.com/MKhiriev/go-cipher-drop/internal/workers"
	"github.com/MKhiriev/go-cipher-drop/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into a gRPC status and sets the error
// code trailer.
func (h *Handler) toStatus(ctx context.Context, err error) error {
	code, wireCode, msg := mapError(err)

	if code == codes.Internal {
		logger.FromContextOr(ctx, h.logger).Err(err).Msg("internal error")
	}

	_ = grpc.SetTrailer(ctx, metadata.Pairs(rpc.ErrorCodeKey, wireCode))

	return status.Error(code, msg)
}

func mapError(err error) (codes.Code, string, string) {
	if errors.Is(err, workers.ErrPoolUnavailable) {
		return codes.Unavailable, models.CodeUnavailable, app.MsgServiceUnavailable
	}

	kind := crypto.KindOf(err)
	switch kind {
	case crypto.KindInvalidInput:
		return codes.InvalidArgument, kind.String(), err.Error()
	case crypto.KindMalformedToken:
		return codes.InvalidArgument, kind.String(), crypto.ErrMalformedToken.Error()
	case crypto.KindDecryptionFailed:
		return codes.FailedPrecondition, kind.String(), crypto.ErrDecryptionFailed.Error()
	default:
		return codes.Internal, kind.String(), app.MsgInternalServerError
	}
}
