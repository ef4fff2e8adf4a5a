package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackErrorBody is sent when the real payload cannot be encoded. It keeps
// the {error,code} shape every error response has.
const fallbackErrorBody = `{"error":"internal error","code":"internal_error"}`

// WriteJSON encodes data, then writes the Content-Type header, statusCode and
// the body. It returns the number of body bytes written.
//
// When data cannot be encoded nothing of it is sent: the client gets a 500
// with fallbackErrorBody and the caller gets the encoding error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallbackErrorBody))
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
