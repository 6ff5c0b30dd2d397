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

// Package api wires configuration, storage and the menu handlers into the
// HTTP server run by cmd/menud.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/cardapio/menu-api/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading configuration from the environment and an optional .env file
//   - Opening and seeding the configured store (memory, pebble, mongo, postgres)
//   - Optionally publishing change events to Kafka
//   - Registering the menu routes with pkg/server
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET    /api/menu                         - List all items
//   - GET    /api/menu/categorias/lista        - Distinct categories
//   - GET    /api/menu/categoria/{categoria}   - Items by category
//   - GET    /api/menu/busca/{nome}            - Items by name
//   - GET    /api/menu/{id}                    - One item
//   - POST   /api/menu                         - Create an item
//   - PUT    /api/menu/{id}                    - Update an item
//   - DELETE /api/menu/{id}                    - Remove an item
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check, includes a store ping
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 3000)
//   - APP_ENV: deployment environment; "production" hides error causes
//   - STORE: memory (default), pebble, mongo or postgres
//   - PEBBLE_DIR, MONGODB_URI, MONGODB_DATABASE, DATABASE_URL: backend settings
//   - SEED_FILE: JSON or YAML item list replacing the built-in catalog
//   - SEED_IF_EMPTY: seed persistent backends when they hold no items
//   - KAFKA_BROKERS, KAFKA_TOPIC: enable change events
//   - FRONTEND_URL, CORS_ORIGINS: extra CORS origins
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/cardapio/menu-api/pkg/api.version=1.0.0'"
package api
