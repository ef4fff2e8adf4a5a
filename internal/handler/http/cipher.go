package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/MKhiriev/go-cipher-drop/models"
)

// maxBodySize caps encrypt/decrypt request bodies.
const maxBodySize = 1 << 20

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	h.handleCipher(w, r, h.services.CipherService.Encrypt)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	h.handleCipher(w, r, h.services.CipherService.Decrypt)
}

func (h *Handler) handleCipher(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, text, password string) (string, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CipherRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	result, err := call(ctx, req.Text, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.CipherResponse{Result: result}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)

	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("unexpected error occurred during cipher operation")
	}

	if _, werr := utils.WriteJSON(w, body, status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("error writing error response")
	}
}
