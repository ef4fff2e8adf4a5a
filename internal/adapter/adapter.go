package adapter

import (
	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
)

// NewCipherAdapter returns the gRPC adapter when a gRPC address is set and
// the HTTP adapter otherwise.
func NewCipherAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CipherAdapter, error) {
	if cfg.GRPCAddress != "" {
		logger.Debug().Str("address", cfg.GRPCAddress).Msg("using gRPC transport")
		return NewGRPCCipherAdapter(cfg, logger)
	}

	logger.Debug().Str("address", cfg.HTTPAddress).Msg("using HTTP transport")
	return NewHTTPCipherAdapter(cfg, logger)
}
