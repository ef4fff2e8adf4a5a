// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed parameters of the pipeline.
const (
	SaltSize = 16
	IVSize   = 16
	KeySize  = 32 // AES-256

	PBKDF2Iterations = 100_000
)

// pbkdf2Deriver is the PBKDF2-HMAC-SHA256 implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	iterations int
	keyLen     int
}

// NewKeyDeriver returns the production [KeyDeriver]: PBKDF2 with HMAC-SHA256,
// [PBKDF2Iterations] rounds and a [KeySize] output.
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2Deriver{
		iterations: PBKDF2Iterations,
		keyLen:     KeySize,
	}
}

// NewKeyDeriverWithParams returns a PBKDF2 deriver with custom parameters.
// Tests use it to keep the iteration count low.
func NewKeyDeriverWithParams(iterations, keyLen int) (KeyDeriver, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: iterations=%d key length=%d", ErrInvalidKDFParams, iterations, keyLen)
	}

	return &pbkdf2Deriver{
		iterations: iterations,
		keyLen:     keyLen,
	}, nil
}

// Derive implements [KeyDeriver]. An empty salt is rejected as a
// configuration error.
func (d *pbkdf2Deriver) Derive(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrInvalidKDFParams)
	}

	return pbkdf2.Key([]byte(password), salt, d.iterations, d.keyLen, sha256.New), nil
}
