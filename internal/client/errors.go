package client

import "errors"

var (
	ErrMissingOperation = errors.New("missing operation: use encrypt or decrypt")
	ErrMissingText      = errors.New("missing text: pass it as an argument or on stdin")
	ErrNoPassword       = errors.New("no password: set CLIENT_PASSWORD or run from a terminal")
)
