// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// cipher server.
//
// [CipherAdapter] decouples the client from the protocol. Two
// implementations ship: HTTP/JSON over resty ([NewHTTPCipherAdapter]) and
// gRPC with the JSON codec ([NewGRPCCipherAdapter]). [NewCipherAdapter]
// picks one from the configuration.
//
// Failures reported by the server come back as [*ServerError], which unwraps
// to a sentinel from this package or from the crypto package, so callers can
// branch with [errors.Is] regardless of the transport.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_adapter_mock.go -package=mock

// CipherAdapter sends encrypt and decrypt requests to the server.
type CipherAdapter interface {
	// Encrypt asks the server to encrypt text under password and returns the
	// token.
	Encrypt(ctx context.Context, text, password string) (string, error)

	// Decrypt asks the server to recover the text sealed in token.
	Decrypt(ctx context.Context, token, password string) (string, error)

	// Close releases the underlying connection.
	Close() error
}
