package validators

// Field name constants used to restrict validation of a
// models.CipherRequest to a subset of its fields.
const (
	// FieldText targets the plaintext (encrypt) or token (decrypt).
	FieldText = "text"

	// FieldPassword targets the shared password.
	FieldPassword = "password"
)
