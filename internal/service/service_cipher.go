// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/workers"
)

const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

type cipherService struct {
	engine *crypto.Engine
	runner workers.Runner

	logger *logger.Logger
}

// NewCipherService returns a CipherService that runs every engine call
// through runner, so the number of concurrent key derivations is bounded.
func NewCipherService(engine *crypto.Engine, runner workers.Runner, logger *logger.Logger) CipherService {
	return &cipherService{
		engine: engine,
		runner: runner,
		logger: logger,
	}
}

func (s *cipherService) Encrypt(ctx context.Context, text, password string) (string, error) {
	start := time.Now()

	var token string
	err := s.runner.Do(ctx, func() error {
		var err error
		token, err = s.engine.Encrypt(text, password)
		return err
	})

	s.logOutcome(ctx, opEncrypt, start, err)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *cipherService) Decrypt(ctx context.Context, token, password string) (string, error) {
	start := time.Now()

	var plaintext string
	err := s.runner.Do(ctx, func() error {
		var err error
		plaintext, err = s.engine.Decrypt(token, password)
		return err
	})

	s.logOutcome(ctx, opDecrypt, start, err)
	if err != nil {
		return "", err
	}

	return plaintext, nil
}

// logOutcome never receives the password or the payload.
func (s *cipherService) logOutcome(ctx context.Context, op string, start time.Time, err error) {
	log := logger.FromContextOr(ctx, s.logger)
	duration := time.Since(start)

	if err == nil {
		log.Debug().Str("op", op).Dur("duration", duration).Msg("cipher operation succeeded")
		return
	}

	kind := crypto.KindOf(err)
	if kind == crypto.KindInternal {
		log.Err(err).Str("op", op).Str("kind", kind.String()).Dur("duration", duration).Msg("cipher operation failed")
		return
	}

	log.Info().Str("op", op).Str("kind", kind.String()).Dur("duration", duration).Msg("cipher operation rejected")
}
