package service

import (
	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/workers"
	"github.com/MKhiriev/go-cipher-drop/models"
)

type Services struct {
	CipherService  CipherService
	AppInfoService AppInfoService
}

func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	engine := crypto.NewEngine(crypto.NewKeyDeriver(), crypto.NewTokenCodec())
	pool := workers.NewPool(cfg.Workers.DerivationPoolSize)

	logger.Info().Int("derivation_pool_size", pool.Size()).Msg("cipher service initialized")

	return &Services{
		CipherService:  NewCipherValidationService().Wrap(NewCipherService(engine, pool, logger)),
		AppInfoService: appInfoService,
	}, nil
}
