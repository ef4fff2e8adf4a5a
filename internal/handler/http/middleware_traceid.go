package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = utils.TraceIDHeader

	// maxTraceIDLen bounds a caller supplied trace ID before it is echoed
	// and logged.
	maxTraceIDLen = 128
)

// withTraceID attaches a child logger carrying trace_id to the request
// context and echoes the ID in the response. A caller supplied ID is reused
// unless it is empty or too long.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
