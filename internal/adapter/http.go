package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/MKhiriev/go-cipher-drop/models"
)

const (
	encryptPath = "/api/encrypt"
	decryptPath = "/api/decrypt"
)

type httpCipherAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCipherAdapter constructs the HTTP/JSON implementation of
// [CipherAdapter]. A bare host:port address is treated as http://host:port.
func NewHTTPCipherAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CipherAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCipherAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCipherAdapter) Encrypt(ctx context.Context, text, password string) (string, error) {
	return h.post(ctx, encryptPath, text, password)
}

func (h *httpCipherAdapter) Decrypt(ctx context.Context, token, password string) (string, error) {
	return h.post(ctx, decryptPath, token, password)
}

func (h *httpCipherAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

func (h *httpCipherAdapter) post(ctx context.Context, path, text, password string) (string, error) {
	var (
		result  models.CipherResponse
		failure models.ErrorResponse
	)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CipherRequest{Text: text, Password: password}).
		SetResult(&result).
		SetError(&failure).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(utils.TraceIDHeader)).
		Msg("server responded")

	if resp.IsError() {
		return "", mapHTTPError(resp.StatusCode(), failure)
	}
	if !resp.IsSuccess() {
		return "", mapHTTPError(resp.StatusCode(), models.ErrorResponse{})
	}

	return result.Result, nil
}
