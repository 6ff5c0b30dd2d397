// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	vendorMediaTypePrefix = "application/vnd.cardapio.menu.v"
)

// negotiateAPIVersion extracts the API version from the Accept header.
// Clients may request a version with a vendor media type such as
// application/vnd.cardapio.menu.v1+json; anything else resolves to v1.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion
	}

	idx := strings.Index(accept, vendorMediaTypePrefix)
	if idx < 0 {
		return DefaultAPIVersion
	}

	// "application/vnd.cardapio.menu.v1+json" -> "v1"
	rest := accept[idx+len(vendorMediaTypePrefix)-1:]
	version, _, _ := strings.Cut(rest, "+")
	if isValidAPIVersion(version) {
		return version
	}

	return DefaultAPIVersion
}

var validAPIVersions = map[string]bool{
	"v1": true,
}

// isValidAPIVersion checks if the provided version string is a served API version.
func isValidAPIVersion(version string) bool {
	return validAPIVersions[version]
}

// SetAPIVersionHeader sets the X-API-Version response header.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
