// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFound answers unknown paths with the JSON error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a registered route but the method
// is not handled. The gateway answers those requests exactly like unknown
// paths, with 404 and the JSON error envelope, hiding which methods a path
// supports.
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del("Allow")
		notFound(w, r)
	}
}
