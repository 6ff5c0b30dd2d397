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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// MenuHandlerTimeout bounds a single menu API request end to end.
	MenuHandlerTimeout = 15 * time.Second

	// MenuStoreCallTimeout is the internal timeout for one storage call.
	// Should be less than MenuHandlerTimeout to allow error handling.
	MenuStoreCallTimeout = 10 * time.Second

	// MaxRequestBodyBytes caps create/update payloads.
	MaxRequestBodyBytes = 1 << 20
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Storage timeouts for backend connections.
const (
	// StoreConnectTimeout is the timeout for connecting to and pinging a
	// remote storage backend (MongoDB, PostgreSQL) at startup.
	StoreConnectTimeout = 10 * time.Second

	// StoreCloseTimeout is the timeout for disconnecting a storage backend.
	StoreCloseTimeout = 5 * time.Second

	// ReadinessCheckTimeout bounds the storage ping behind GET /ready.
	ReadinessCheckTimeout = 2 * time.Second
)

// Event publishing timeouts.
const (
	// EventPublishTimeout bounds a single change-event write to the broker.
	EventPublishTimeout = 5 * time.Second

	// EventBatchTimeout is the broker writer batch flush interval.
	EventBatchTimeout = 10 * time.Millisecond
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)
