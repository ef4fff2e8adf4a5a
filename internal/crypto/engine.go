// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

// Engine orchestrates a [KeyDeriver] and a [TokenCodec] into the Encrypt and
// Decrypt operations. It holds no per-call state and is safe for concurrent
// use.
type Engine struct {
	deriver KeyDeriver
	codec   TokenCodec

	// random is the CSPRNG for salts and IVs. crypto/rand.Reader in
	// production.
	random io.Reader
}

// NewEngine constructs an [Engine] reading randomness from crypto/rand.
func NewEngine(deriver KeyDeriver, codec TokenCodec) *Engine {
	return &Engine{
		deriver: deriver,
		codec:   codec,
		random:  rand.Reader,
	}
}

// Encrypt derives a key from password and a fresh salt, encrypts plaintext
// with AES-256-CBC under a fresh IV and returns the packed token.
//
// Returns [ErrInvalidInput] when plaintext or password is empty. Any other
// error is internal.
func (e *Engine) Encrypt(plaintext, password string) (string, error) {
	if plaintext == "" || password == "" {
		return "", ErrInvalidInput
	}

	salt, err := e.randomBytes(SaltSize)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := e.deriver.Derive(password, salt)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	defer clearBytes(key)

	iv, err := e.randomBytes(IVSize)
	if err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	ciphertext := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, ciphertext)

	return e.codec.Pack(salt, iv, ciphertext), nil
}

// Decrypt unpacks token, re-derives the key from its salt and decrypts the
// ciphertext.
//
// Returns [ErrInvalidInput] for empty arguments, [ErrMalformedToken] when the
// token cannot be unpacked, and [ErrDecryptionFailed] when the padding or the
// UTF-8 check rejects the result.
func (e *Engine) Decrypt(token, password string) (string, error) {
	if token == "" || password == "" {
		return "", ErrInvalidInput
	}

	salt, iv, ciphertext, err := e.codec.Unpack(token)
	if err != nil {
		return "", err
	}

	key, err := e.deriver.Derive(password, salt)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrDecryptionFailed
	}

	decrypted := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, ciphertext)

	plaintext, err := pkcs7Unpad(decrypted, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: result is not valid UTF-8", ErrDecryptionFailed)
	}

	return string(plaintext), nil
}

func (e *Engine) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(e.random, b); err != nil {
		return nil, err
	}
	return b, nil
}

// clearBytes zeroes a key once it is no longer needed.
func clearBytes(b []byte) {
	clear(b)
}
