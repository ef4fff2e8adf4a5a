package http

import (
	"embed"
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/logger"
)

//go:embed pages/*.html
var pages embed.FS

func (h *Handler) encryptPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "pages/encrypt.html")
}

func (h *Handler) decryptPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "pages/decrypt.html")
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, name string) {
	page, err := pages.ReadFile(name)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("embedded page is missing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
