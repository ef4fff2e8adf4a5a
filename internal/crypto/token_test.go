package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_Layout(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	iv := bytes.Repeat([]byte{0x02}, IVSize)
	ct := bytes.Repeat([]byte{0x03}, 32)

	token := NewTokenCodec().Pack(salt, iv, ct)

	blob, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, salt, blob[:16])
	assert.Equal(t, iv, blob[16:32])
	assert.Equal(t, ct, blob[32:])
}

func TestPack_StandardPaddedBase64(t *testing.T) {
	// 34 bytes are not a multiple of 3, so the encoding must end in "==".
	token := NewTokenCodec().Pack(make([]byte, 16), make([]byte, 16), make([]byte, 2))
	assert.Equal(t, "==", token[len(token)-2:])
	assert.NotContains(t, token, "\n")
}

func TestUnpack_RoundTrip(t *testing.T) {
	codec := NewTokenCodec()

	salt := make([]byte, SaltSize)
	iv := make([]byte, IVSize)
	ct := make([]byte, 48)
	for _, b := range [][]byte{salt, iv, ct} {
		_, err := rand.Read(b)
		require.NoError(t, err)
	}

	gotSalt, gotIV, gotCT, err := codec.Unpack(codec.Pack(salt, iv, ct))
	require.NoError(t, err)
	assert.Equal(t, salt, gotSalt)
	assert.Equal(t, iv, gotIV)
	assert.Equal(t, ct, gotCT)
}

func TestUnpack_TrimsWhitespace(t *testing.T) {
	codec := NewTokenCodec()
	token := codec.Pack(make([]byte, 16), make([]byte, 16), make([]byte, 16))

	_, _, ct, err := codec.Unpack("  " + token + "\n")
	require.NoError(t, err)
	assert.Len(t, ct, 16)
}

func TestUnpack_HeaderOnlyIsAccepted(t *testing.T) {
	token := base64.StdEncoding.EncodeToString(make([]byte, 32))

	_, _, ct, err := NewTokenCodec().Unpack(token)
	require.NoError(t, err)
	assert.Empty(t, ct)
}

func TestUnpack_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "not-base64!!"},
		{name: "url-safe alphabet", token: "____"},
		{name: "missing padding", token: "YWJjZA"},
		{name: "embedded space", token: "YWJj ZA=="},
		{name: "20 bytes is too short", token: base64.StdEncoding.EncodeToString(make([]byte, 20))},
		{name: "31 bytes is too short", token: base64.StdEncoding.EncodeToString(make([]byte, 31))},
		{name: "ciphertext not block aligned", token: base64.StdEncoding.EncodeToString(make([]byte, 40))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := NewTokenCodec().Unpack(tt.token)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}
