// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a registered route but the method
// does not. This handler answers 404 with the same JSON body as an unknown
// route instead, so unsupported methods look exactly like missing routes.
//
// If the requested method IS registered for a route whose pattern equals
// the raw request path, the request is forwarded to the router. Parameterised
// segments are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			routeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = writeError(w, http.StatusNotFound, msgRouteNotFound)
}
