// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the pipeline. Callers match them with
// [errors.Is] or classify them with [KindOf].
var (
	// ErrInvalidInput is returned when the text or the password is empty.
	ErrInvalidInput = errors.New("text and password must not be empty")

	// ErrMalformedToken is returned when a token is not valid base64 or is too
	// short to contain a salt, an IV and whole cipher blocks.
	ErrMalformedToken = errors.New("malformed token")

	// ErrDecryptionFailed is returned when the padding or UTF-8 check fails
	// after decryption. The message is the same for a wrong
	// password and for corrupted data.
	ErrDecryptionFailed = errors.New("decryption failed: check that the password is correct and the text is not corrupted")

	// ErrInvalidKDFParams is a configuration error raised when the key
	// derivation parameters are unusable.
	ErrInvalidKDFParams = errors.New("invalid key derivation parameters")
)

// Kind is the closed set of failure classes a pipeline call can end with.
type Kind int

const (
	// KindInternal covers every unanticipated failure, including
	// misconfiguration and exhausted randomness.
	KindInternal Kind = iota
	// KindInvalidInput means the caller sent an empty text or password.
	KindInvalidInput
	// KindMalformedToken means the token could not be decoded or split.
	KindMalformedToken
	// KindDecryptionFailed means the key was wrong or the ciphertext corrupted.
	KindDecryptionFailed
)

var kindCodes = map[Kind]string{
	KindInternal:         "internal_error",
	KindInvalidInput:     "invalid_input",
	KindMalformedToken:   "malformed_token",
	KindDecryptionFailed: "decryption_failed",
}

// String returns the stable wire code of the kind, e.g. "malformed_token".
func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[KindInternal]
}

// Err returns the sentinel error matching the kind. KindInternal has no
// sentinel of its own and returns nil.
func (k Kind) Err() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindMalformedToken:
		return ErrMalformedToken
	case KindDecryptionFailed:
		return ErrDecryptionFailed
	default:
		return nil
	}
}

// ParseKind maps a wire code back to its kind. Unknown codes are internal.
func ParseKind(code string) Kind {
	for kind, c := range kindCodes {
		if c == code {
			return kind
		}
	}
	return KindInternal
}

// KindOf classifies err. A nil error has no meaningful kind and is reported
// as KindInternal; callers check for nil first.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrMalformedToken):
		return KindMalformedToken
	case errors.Is(err, ErrDecryptionFailed):
		return KindDecryptionFailed
	default:
		return KindInternal
	}
}
