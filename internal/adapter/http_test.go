// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/MKhiriev/go-cipher-drop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPAdapter(t *testing.T, serverURL string) *httpCipherAdapter {
	t.Helper()

	a, err := NewHTTPCipherAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCipherAdapter)
}

func TestHTTPAdapter_Encrypt_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, encryptPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.TraceIDHeader))

		var req models.CipherRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.CipherRequest{Text: "hello", Password: "pw"}, req)

		_, _ = utils.WriteJSON(w, models.CipherResponse{Result: "TOKEN"}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestHTTPAdapter(t, srv.URL).Encrypt(context.Background(), "hello", "pw")

	require.NoError(t, err)
	assert.Equal(t, "TOKEN", got)
}

func TestHTTPAdapter_Decrypt_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, decryptPath, r.URL.Path)
		_, _ = utils.WriteJSON(w, models.CipherResponse{Result: "hello"}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestHTTPAdapter(t, srv.URL).Decrypt(context.Background(), "TOKEN", "pw")

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestHTTPAdapter_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid input keeps server message",
			status:  http.StatusBadRequest,
			body:    models.ErrorResponse{Error: "text must not be empty", Code: "invalid_input"},
			wantErr: crypto.ErrInvalidInput,
			wantMsg: "text must not be empty",
		},
		{
			name:    "malformed token",
			status:  http.StatusUnprocessableEntity,
			body:    models.ErrorResponse{Error: crypto.ErrMalformedToken.Error(), Code: "malformed_token"},
			wantErr: crypto.ErrMalformedToken,
			wantMsg: crypto.ErrMalformedToken.Error(),
		},
		{
			name:    "decryption failed",
			status:  http.StatusUnprocessableEntity,
			body:    models.ErrorResponse{Error: crypto.ErrDecryptionFailed.Error(), Code: "decryption_failed"},
			wantErr: crypto.ErrDecryptionFailed,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    models.ErrorResponse{Error: "slow down", Code: models.CodeTooManyRequests},
			wantErr: ErrTooManyRequests,
		},
		{
			name:    "internal",
			status:  http.StatusInternalServerError,
			body:    models.ErrorResponse{Error: "internal server error", Code: "internal_error"},
			wantErr: ErrServerInternal,
		},
		{
			name:    "non json body falls back to status",
			status:  http.StatusServiceUnavailable,
			body:    "upstream down",
			wantErr: ErrUnavailable,
			wantMsg: ErrUnavailable.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if s, ok := tt.body.(string); ok {
					w.Header().Set("Content-Type", "text/plain")
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(s))
					return
				}
				_, _ = utils.WriteJSON(w, tt.body, tt.status)
			}))
			defer srv.Close()

			_, err := newTestHTTPAdapter(t, srv.URL).Decrypt(context.Background(), "TOKEN", "pw")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var serverErr *ServerError
			require.ErrorAs(t, err, &serverErr)
			assert.Equal(t, tt.status, serverErr.Status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, serverErr.Error())
			}
		})
	}
}

func TestHTTPAdapter_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newTestHTTPAdapter(t, addr).Encrypt(context.Background(), "hello", "pw")

	require.Error(t, err)
	var serverErr *ServerError
	assert.False(t, errors.As(err, &serverErr))
	assert.Contains(t, err.Error(), encryptPath)
}

func TestHTTPAdapter_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestHTTPAdapter(t, srv.URL).Encrypt(ctx, "hello", "pw")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host port", raw: "localhost:5001", want: "http://localhost:5001"},
		{name: "trailing slash", raw: "https://cipher.example.com/", want: "https://cipher.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:5001  ", want: "http://127.0.0.1:5001"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCipherAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPCipherAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNoAddress)
}
