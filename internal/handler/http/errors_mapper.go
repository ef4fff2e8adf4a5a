package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/app"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/workers"
	"github.com/MKhiriev/go-cipher-drop/models"
)

var kindStatusMap = map[crypto.Kind]int{
	crypto.KindInvalidInput:     http.StatusBadRequest,
	crypto.KindMalformedToken:   http.StatusUnprocessableEntity,
	crypto.KindDecryptionFailed: http.StatusUnprocessableEntity,
	crypto.KindInternal:         http.StatusInternalServerError,
}

// errorResponse maps err to a status code and a body. Only invalid input
// keeps its detail (the missing field); every other kind answers with the
// fixed message of its sentinel so nothing about the key or plaintext leaks.
func errorResponse(err error) (int, models.ErrorResponse) {
	switch {
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, models.ErrorResponse{Error: app.MsgInvalidJSON, Code: models.CodeInvalidJSON}
	case errors.Is(err, workers.ErrPoolUnavailable):
		return http.StatusServiceUnavailable, models.ErrorResponse{Error: app.MsgServiceUnavailable, Code: models.CodeUnavailable}
	}

	kind := crypto.KindOf(err)
	status := kindStatusMap[kind]

	switch kind {
	case crypto.KindInvalidInput:
		return status, models.ErrorResponse{Error: err.Error(), Code: kind.String()}
	case crypto.KindInternal:
		return status, models.ErrorResponse{Error: app.MsgInternalServerError, Code: kind.String()}
	default:
		return status, models.ErrorResponse{Error: kind.Err().Error(), Code: kind.String()}
	}
}
