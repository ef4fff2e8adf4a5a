package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// sentinelForCode maps a wire error code to its sentinel, or nil for an
// empty or unknown code.
func sentinelForCode(code string) error {
	switch code {
	case "":
		return nil
	case models.CodeInvalidJSON:
		return ErrBadRequest
	case models.CodeTooManyRequests:
		return ErrTooManyRequests
	case models.CodeUnavailable:
		return ErrUnavailable
	}

	kind := crypto.ParseKind(code)
	if kind == crypto.KindInternal {
		if kind.String() != code {
			return nil
		}
		return ErrServerInternal
	}
	return kind.Err()
}

func mapHTTPError(statusCode int, body models.ErrorResponse) error {
	sentinel := sentinelForCode(body.Code)
	if sentinel == nil {
		switch {
		case statusCode == http.StatusBadRequest:
			sentinel = ErrBadRequest
		case statusCode == http.StatusTooManyRequests:
			sentinel = ErrTooManyRequests
		case statusCode == http.StatusServiceUnavailable:
			sentinel = ErrUnavailable
		case statusCode >= http.StatusInternalServerError:
			sentinel = ErrServerInternal
		default:
			sentinel = ErrUnexpected
		}
	}

	message := body.Error
	if message == "" {
		message = sentinel.Error()
	}

	return &ServerError{Status: statusCode, Code: body.Code, Message: message, sentinel: sentinel}
}

func mapGRPCError(err error, code string) error {
	st, isStatus := status.FromError(err)
	if !isStatus {
		return err
	}

	sentinel := sentinelForCode(code)
	if sentinel == nil {
		switch st.Code() {
		case codes.InvalidArgument:
			sentinel = ErrBadRequest
		case codes.FailedPrecondition:
			sentinel = crypto.ErrDecryptionFailed
		case codes.ResourceExhausted:
			sentinel = ErrTooManyRequests
		case codes.Unavailable:
			sentinel = ErrUnavailable
		case codes.DeadlineExceeded:
			sentinel = context.DeadlineExceeded
		case codes.Canceled:
			sentinel = context.Canceled
		case codes.Internal, codes.Unknown:
			sentinel = ErrServerInternal
		default:
			sentinel = ErrUnexpected
		}
	}

	message := st.Message()
	if message == "" {
		message = sentinel.Error()
	}

	return &ServerError{Status: int(st.Code()), Code: code, Message: message, sentinel: sentinel}
}
