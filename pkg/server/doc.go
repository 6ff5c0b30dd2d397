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

// Package server provides the HTTP server shared by the menu API: routing on
// http.ServeMux patterns, the error envelope, and the operational endpoints.
//
// # Architecture
//
//   - Functional options on New (WithName, WithHandler, WithConfig, ...)
//   - CORS allow-list applied before routing (github.com/rs/cors)
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery into a 500 envelope
//   - Prometheus RED metrics labelled by route pattern
//   - Graceful shutdown on SIGINT/SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("menud"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /api/menu": h.List,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// GET /health - liveness, always 200:
//
//	{"status": "OK", "message": "...", "timestamp": "..."}
//
// GET /ready - readiness, 503 until Start and while any ReadinessCheck fails.
//
// GET /metrics - Prometheus exposition.
//
// GET / - service name, version, readiness and registered routes.
//
// Any other unmatched request gets a 404 envelope with path and method.
//
// # Errors
//
// Failures are written as ErrorResponse:
//
//	{
//	  "success": false,
//	  "message": "Item não encontrado",
//	  "code": "NOT_FOUND",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps pkg/errors codes to statuses via HTTPStatusFromCode.
// The "error" field carries the cause text unless the environment is
// production.
//
// # Configuration
//
// PORT (default 3000) and SHUTDOWN_TIMEOUT_SECONDS are read from the
// environment by NewConfig.
package server
