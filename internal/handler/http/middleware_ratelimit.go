package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/app"
	"github.com/MKhiriev/go-cipher-drop/internal/utils"
	"github.com/MKhiriev/go-cipher-drop/models"
	"golang.org/x/time/rate"
)

// newLimiter returns nil when perSecond is not positive.
func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// withRateLimit rejects requests over the configured rate with 429. The
// limiter is shared by every client.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{
				Error: app.MsgTooManyRequests,
				Code:  models.CodeTooManyRequests,
			}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
