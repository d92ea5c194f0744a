// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed whenever a request path matches a
// registered route but the HTTP method is not handled. This handler answers
// 404 Not Found instead, so that a known path requested with an unsupported
// method (e.g. DELETE /signin) looks exactly like an unknown path.
//
// If router does route the method for the path, the request is forwarded to
// the router's normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			logger.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("method is not routed for path")
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
