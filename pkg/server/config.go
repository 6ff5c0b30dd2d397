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
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cardapio/menu-api/pkg/defaults"
	"golang.org/x/time/rate"
)

const (
	// EnvPort overrides the listen port.
	EnvPort = "PORT"
	// EnvShutdownTimeout overrides the graceful shutdown window, in seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"

	defaultPort = 3000

	// EnvironmentProduction hides error causes from response bodies.
	EnvironmentProduction = "production"
)

// ReadinessCheck reports whether a dependency can serve traffic.
// A non-nil error turns GET /ready into a 503.
type ReadinessCheck func(ctx context.Context) error

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Environment is the deployment environment (development, production).
	Environment string

	// HealthMessage is returned by GET /health.
	HealthMessage string

	// Additional Handlers to be added to the server, keyed by
	// http.ServeMux pattern (e.g. "GET /api/menu/{id}").
	Handlers map[string]http.HandlerFunc

	// ReadinessChecks run on every GET /ready.
	ReadinessChecks []ReadinessCheck

	// AllowedOrigins is the CORS allow-list. Entries may contain one
	// wildcard, e.g. "https://*.vercel.app".
	AllowedOrigins []string

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// exposeErrorDetail reports whether error causes may be written to clients.
func (c *Config) exposeErrorDetail() bool {
	return c.Environment != EnvironmentProduction
}

// parseConfig returns sensible defaults
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Environment:       "development",
		Address:           "",
		Port:              defaultPort,
		RateLimit:         100, // 100 req/s
		RateLimitBurst:    200, // burst of 200
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	// Override with environment variables if set
	if portStr := os.Getenv(EnvPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 && port < 65536 {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match the orchestrator grace period
	if shutdownStr := os.Getenv(EnvShutdownTimeout); shutdownStr != "" {
		if seconds, err := strconv.Atoi(shutdownStr); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
