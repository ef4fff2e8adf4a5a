package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS lets the browser pages be served from another origin. An empty
// origin list allows every origin.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         600,
	})

	return c.Handler
}
