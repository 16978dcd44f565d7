// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tweet/internal/utils"
)

const msgNotFound = "Not found"

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. A known path requested with an unsupported method gets the same
// 404 as an unknown path, so the API does not leak which routes exist.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
}
