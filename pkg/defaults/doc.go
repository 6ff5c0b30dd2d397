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

// Package defaults provides centralized configuration constants for the menu API.
//
// This package defines timeout values and size limits used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Storage timeouts: For connecting to MongoDB and PostgreSQL
//   - Event timeouts: For publishing change events to Kafka
//   - HTTP client timeouts: For the CLI client
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/cardapio/menu-api/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.MenuHandlerTimeout)
//	defer cancel()
package defaults
