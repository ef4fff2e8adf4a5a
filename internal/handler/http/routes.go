package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/app"
	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/MKhiriev/go-cipher-drop/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(middleware.GetHead)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// pages and service endpoints
	router.Group(func(r chi.Router) {
		r.Get("/", h.encryptPage)
		r.Get("/decrypt-page", h.decryptPage)
		r.Get("/decifra", h.decryptPage)

		r.Get("/health", h.health)
		r.Get("/api/info", h.getAppInfo)
		r.Get("/api/version", h.getServerVersion)
	})

	// cipher operations
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/encrypt", h.encrypt)
		r.Post("/decrypt", h.decrypt)
		r.Post("/api/encrypt", h.encrypt)
		r.Post("/api/decrypt", h.decrypt)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound, Code: "not_found"}, http.StatusNotFound)
}
