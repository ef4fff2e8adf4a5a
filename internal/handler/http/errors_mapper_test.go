package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cipher-drop/internal/app"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/validators"
	"github.com/MKhiriev/go-cipher-drop/internal/workers"
	"github.com/MKhiriev/go-cipher-drop/models"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "invalid json",
			err:        fmt.Errorf("%w: unexpected EOF", errInvalidJSON),
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeInvalidJSON,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "invalid input keeps field detail",
			err:        fmt.Errorf("%w: %w", crypto.ErrInvalidInput, validators.ErrEmptyPassword),
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
			wantMsg:    crypto.ErrInvalidInput.Error() + ": " + validators.ErrEmptyPassword.Error(),
		},
		{
			name:       "malformed token hides decoder detail",
			err:        fmt.Errorf("%w: illegal base64 data at input byte 3", crypto.ErrMalformedToken),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "malformed_token",
			wantMsg:    crypto.ErrMalformedToken.Error(),
		},
		{
			name:       "decryption failed is generic",
			err:        fmt.Errorf("%w: invalid padding", crypto.ErrDecryptionFailed),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "decryption_failed",
			wantMsg:    crypto.ErrDecryptionFailed.Error(),
		},
		{
			name:       "pool unavailable",
			err:        fmt.Errorf("%w: %w", workers.ErrPoolUnavailable, context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   models.CodeUnavailable,
			wantMsg:    app.MsgServiceUnavailable,
		},
		{
			name:       "internal",
			err:        errors.New("entropy source failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
