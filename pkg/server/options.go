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

import "net/http"

// Option is a functional option for configuring Server instances.
type Option func(*Server)

// WithName sets the server name reported by the root route.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the server version reported by the root route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithEnvironment sets the deployment environment.
func WithEnvironment(env string) Option {
	return func(s *Server) {
		if env != "" {
			s.config.Environment = env
		}
	}
}

// WithHealthMessage sets the message returned by GET /health.
func WithHealthMessage(msg string) Option {
	return func(s *Server) {
		s.config.HealthMessage = msg
	}
}

// WithHandler adds routes keyed by http.ServeMux pattern.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for pattern, h := range handlers {
			s.config.Handlers[pattern] = h
		}
	}
}

// WithReadinessCheck adds a dependency check consulted by GET /ready.
func WithReadinessCheck(check ReadinessCheck) Option {
	return func(s *Server) {
		if check != nil {
			s.config.ReadinessChecks = append(s.config.ReadinessChecks, check)
		}
	}
}

// WithAllowedOrigins appends CORS origins to the allow-list.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.config.AllowedOrigins = append(s.config.AllowedOrigins, origins...)
	}
}

// WithConfig replaces the whole configuration. Options applied after it
// still take effect.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}
