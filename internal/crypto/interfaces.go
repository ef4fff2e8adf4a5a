package crypto

// KeyDeriver stretches a password and a salt into a symmetric key.
//
// Implementations must be deterministic for the same (password, salt) pair
// and must not cache results between calls.
type KeyDeriver interface {
	// Derive returns a key of the implementation's fixed length.
	Derive(password string, salt []byte) ([]byte, error)
}

// TokenCodec converts the binary salt ‖ iv ‖ ciphertext layout to and from
// its transport-safe text form.
type TokenCodec interface {
	// Pack concatenates the three parts in fixed order and encodes them.
	Pack(salt, iv, ciphertext []byte) string

	// Unpack decodes a token and splits it back into its parts. It returns
	// [ErrMalformedToken] when the token cannot hold a salt, an IV and a
	// block-aligned ciphertext.
	Unpack(token string) (salt, iv, ciphertext []byte, err error)
}
