// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/mock"
	"github.com/MKhiriev/go-cipher-drop/internal/service"
	"github.com/MKhiriev/go-cipher-drop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type testRouter struct {
	handler http.Handler
	cipher  *mock.MockCipherService
	info    *mock.MockAppInfoService
}

func newTestRouter(t *testing.T, cfg config.Server) testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)

	cipherSvc := mock.NewMockCipherService(ctrl)
	infoSvc := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		CipherService:  cipherSvc,
		AppInfoService: infoSvc,
	}, cfg, logger.Nop())

	return testRouter{handler: h.Init(), cipher: cipherSvc, info: infoSvc}
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// ---- Cipher routes ----

func TestInit_EncryptRoutes(t *testing.T) {
	for _, path := range []string{"/encrypt", "/api/encrypt"} {
		t.Run(path, func(t *testing.T) {
			r := newTestRouter(t, config.Server{})
			r.cipher.EXPECT().Encrypt(gomock.Any(), "hello world", "correct horse battery staple").Return("dG9rZW4=", nil)

			rr := doRequest(r.handler, http.MethodPost, path,
				`{"text":"hello world","password":"correct horse battery staple"}`)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"result":"dG9rZW4="}`, rr.Body.String())
		})
	}
}

func TestInit_DecryptRoutes(t *testing.T) {
	for _, path := range []string{"/decrypt", "/api/decrypt"} {
		t.Run(path, func(t *testing.T) {
			r := newTestRouter(t, config.Server{})
			r.cipher.EXPECT().Decrypt(gomock.Any(), "dG9rZW4=", "pw").Return("hello world", nil)

			rr := doRequest(r.handler, http.MethodPost, path, `{"text":"dG9rZW4=","password":"pw"}`)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"result":"hello world"}`, rr.Body.String())
		})
	}
}

func TestInit_CipherErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", fmt.Errorf("%w: text is required", crypto.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{"malformed token", crypto.ErrMalformedToken, http.StatusUnprocessableEntity, "malformed_token"},
		{"decryption failed", crypto.ErrDecryptionFailed, http.StatusUnprocessableEntity, "decryption_failed"},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, config.Server{})
			r.cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).Return("", tt.err)

			rr := doRequest(r.handler, http.MethodPost, "/decrypt", `{"text":"x","password":"y"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
		})
	}
}

func TestInit_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"truncated", `{"text":`},
		{"array", `[]`},
		{"wrong field type", `{"text":1,"password":"p"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, config.Server{})

			rr := doRequest(r.handler, http.MethodPost, "/encrypt", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, models.CodeInvalidJSON, decodeError(t, rr).Code)
		})
	}
}

func TestInit_BodyTooLarge(t *testing.T) {
	r := newTestRouter(t, config.Server{})

	body := `{"text":"` + strings.Repeat("a", maxBodySize) + `","password":"p"}`
	rr := doRequest(r.handler, http.MethodPost, "/encrypt", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CodeInvalidJSON, decodeError(t, rr).Code)
}

func TestInit_RateLimit(t *testing.T) {
	r := newTestRouter(t, config.Server{RateLimit: 0.001, RateBurst: 1})
	r.cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any(), gomock.Any()).Return("t", nil).Times(1)

	first := doRequest(r.handler, http.MethodPost, "/encrypt", `{"text":"a","password":"b"}`)
	second := doRequest(r.handler, http.MethodPost, "/encrypt", `{"text":"a","password":"b"}`)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, models.CodeTooManyRequests, decodeError(t, second).Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	// pages are not limited
	assert.Equal(t, http.StatusOK, doRequest(r.handler, http.MethodGet, "/health", "").Code)
}

// ---- Pages and service endpoints ----

func TestInit_Pages(t *testing.T) {
	tests := []struct {
		path     string
		contains string
	}{
		{"/", `fetch("/encrypt"`},
		{"/decrypt-page", `fetch("/decrypt"`},
		{"/decifra", `fetch("/decrypt"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := newTestRouter(t, config.Server{})

			rr := doRequest(r.handler, http.MethodGet, tt.path, "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestInit_Health(t *testing.T) {
	r := newTestRouter(t, config.Server{})

	rr := doRequest(r.handler, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestInit_AppInfo(t *testing.T) {
	r := newTestRouter(t, config.Server{})
	r.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{
		Version: "1.2.3",
		KDF:     models.KDFInfo{Algorithm: "PBKDF2", Iterations: 100000},
	})

	rr := doRequest(r.handler, http.MethodGet, "/api/info", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var info models.AppInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, 100000, info.KDF.Iterations)
}

func TestInit_Version(t *testing.T) {
	r := newTestRouter(t, config.Server{})
	r.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "v2.0.0-beta+build.42"})

	rr := doRequest(r.handler, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v2.0.0-beta+build.42", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

// ---- Routing behaviour ----

func TestInit_UnknownRoute_Returns404(t *testing.T) {
	r := newTestRouter(t, config.Server{})

	rr := doRequest(r.handler, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not_found", decodeError(t, rr).Code)
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/encrypt"},
		{http.MethodPut, "/api/decrypt"},
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := newTestRouter(t, config.Server{})

			rr := doRequest(r.handler, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	r := newTestRouter(t, config.Server{})

	rr := doRequest(r.handler, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	r.handler.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
}

func TestInit_CORS(t *testing.T) {
	t.Run("preflight any origin", func(t *testing.T) {
		r := newTestRouter(t, config.Server{})

		req := httptest.NewRequest(http.MethodOptions, "/encrypt", nil)
		req.Header.Set("Origin", "https://game.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		// browsers send the requested header names lowercased
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rr := httptest.NewRecorder()
		r.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "content-type", rr.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		r := newTestRouter(t, config.Server{CORSOrigins: []string{"https://allowed.example"}})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://other.example")
		rr := httptest.NewRecorder()
		r.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://allowed.example")
		rr = httptest.NewRecorder()
		r.handler.ServeHTTP(rr, req)

		assert.Equal(t, "https://allowed.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestInit_RecoversFromPanic(t *testing.T) {
	r := newTestRouter(t, config.Server{})
	r.cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string) (string, error) { panic("unexpected") },
	)

	rr := doRequest(r.handler, http.MethodPost, "/encrypt", `{"text":"a","password":"b"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
