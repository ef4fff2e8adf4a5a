package service

import (
	"context"

	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:     cfg.Version,
			BuildDate:   buildInfo.BuildDate(),
			BuildCommit: buildInfo.BuildCommit(),
			KDF: models.KDFInfo{
				Algorithm:  "PBKDF2",
				Hash:       "HMAC-SHA256",
				Iterations: crypto.PBKDF2Iterations,
				KeySize:    crypto.KeySize,
				SaltSize:   crypto.SaltSize,
				IVSize:     crypto.IVSize,
				Cipher:     "AES-256-CBC/PKCS7",
			},
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
