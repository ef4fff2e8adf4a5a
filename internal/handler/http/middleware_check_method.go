// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-drop/internal/logger"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. A
// known path requested with a method it does not serve gets the same JSON
// 404 as an unknown path, so callers cannot probe which routes exist.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not served on this path")

	notFound(w, r)
}
