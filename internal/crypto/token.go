// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"encoding/base64"
	"fmt"
	"strings"
)

// headerSize is the length of the salt ‖ iv prefix of every token.
const headerSize = SaltSize + IVSize

// base64Codec is the standard-base64 implementation of [TokenCodec].
type base64Codec struct{}

// NewTokenCodec returns the [TokenCodec] used on the wire: standard padded
// base64 of salt ‖ iv ‖ ciphertext.
func NewTokenCodec() TokenCodec {
	return base64Codec{}
}

// Pack implements [TokenCodec].
func (base64Codec) Pack(salt, iv, ciphertext []byte) string {
	blob := make([]byte, 0, len(salt)+len(iv)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob)
}

// Unpack implements [TokenCodec]. Leading and trailing whitespace is ignored
// so tokens pasted from chat or e-mail still decode. The returned slices
// share the decoded buffer.
func (base64Codec) Unpack(token string) (salt, iv, ciphertext []byte, err error) {
	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if len(blob) < headerSize {
		return nil, nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedToken, len(blob), headerSize)
	}

	if (len(blob)-headerSize)%aes.BlockSize != 0 {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrMalformedToken)
	}

	return blob[:SaltSize], blob[SaltSize:headerSize], blob[headerSize:], nil
}
