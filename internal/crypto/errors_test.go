package crypto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "invalid input", err: ErrInvalidInput, want: KindInvalidInput},
		{name: "wrapped malformed token", err: fmt.Errorf("decode: %w", ErrMalformedToken), want: KindMalformedToken},
		{name: "wrapped decryption failure", err: fmt.Errorf("%w: bad padding", ErrDecryptionFailed), want: KindDecryptionFailed},
		{name: "kdf misconfiguration", err: ErrInvalidKDFParams, want: KindInternal},
		{name: "unknown error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_CodesRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindInternal, KindInvalidInput, KindMalformedToken, KindDecryptionFailed} {
		assert.Equal(t, kind, ParseKind(kind.String()))
	}

	assert.Equal(t, "malformed_token", KindMalformedToken.String())
	assert.Equal(t, KindInternal, ParseKind("something_else"))
	assert.Equal(t, "internal_error", Kind(42).String())
}

func TestKind_Err(t *testing.T) {
	assert.Equal(t, ErrInvalidInput, KindInvalidInput.Err())
	assert.Equal(t, ErrMalformedToken, KindMalformedToken.Err())
	assert.Equal(t, ErrDecryptionFailed, KindDecryptionFailed.Err())
	assert.NoError(t, KindInternal.Err())
}
