package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access line per request. The level follows the
// status: 5xx is an error, 4xx a warning. Bodies are never logged since
// they carry plaintexts and passwords.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(rw, r)

		status := rw.statusOrOK()
		logger.FromRequest(r).WithLevel(levelForStatus(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
