package adapter

import "errors"

var (
	ErrBadRequest      = errors.New("server rejected the request")
	ErrTooManyRequests = errors.New("too many requests")
	ErrUnavailable     = errors.New("server unavailable")
	ErrServerInternal  = errors.New("server internal error")
	ErrUnexpected      = errors.New("unexpected server response")
	ErrNoAddress       = errors.New("no server address configured")
)

// ServerError is a failure reported by the server. Message is the text the
// server sent; errors.Is matches the sentinel for Code.
type ServerError struct {
	// Status is the HTTP status or the gRPC code as an integer.
	Status  int
	Code    string
	Message string

	sentinel error
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.sentinel
}
