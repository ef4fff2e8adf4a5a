package validators

import "errors"

// Programming errors: the validator was handed something it does not know.
var (
	ErrUnsupportedType = errors.New("validate: unsupported value type")
	ErrUnknownField    = errors.New("validate: unknown field")
)

// Input errors, reported to the caller as invalid_input.
var (
	ErrEmptyText     = errors.New("text is required")
	ErrEmptyPassword = errors.New("password is required")
)
