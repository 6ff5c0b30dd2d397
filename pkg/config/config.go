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

// Package config loads the menu API settings from the environment,
// after reading an optional .env file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/store"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAppEnv          = "APP_ENV"
	EnvStore           = "STORE"
	EnvPebbleDir       = "PEBBLE_DIR"
	EnvMongoURI        = "MONGODB_URI"
	EnvMongoDatabase   = "MONGODB_DATABASE"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvSeedFile        = "SEED_FILE"
	EnvSeedIfEmpty     = "SEED_IF_EMPTY"
	EnvKafkaBrokers    = "KAFKA_BROKERS"
	EnvKafkaTopic      = "KAFKA_TOPIC"
	EnvFrontendURL     = "FRONTEND_URL"
	EnvCORSOrigins     = "CORS_ORIGINS"
	defaultEnvironment = "development"
	defaultPebbleDir   = "./data/menu"
	defaultMongoURI    = "mongodb://localhost:27017/cardapio"
	defaultMongoDB     = "cardapio"
	defaultKafkaTopic  = "menu.events"
)

// DefaultOrigins are always allowed by CORS.
var DefaultOrigins = []string{
	"http://localhost:4200",
	"http://localhost:3000",
	"https://*.vercel.app",
}

// Config is the process configuration.
type Config struct {
	Environment    string
	Store          store.Config
	SeedFile       string
	SeedIfEmpty    bool
	Kafka          KafkaConfig
	AllowedOrigins []string
}

// KafkaConfig enables change events when Brokers is not empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Load reads files (default ".env") into the environment without
// overriding variables already set, then builds the Config. A missing
// default .env is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to load env file", err)
		}
	}

	backend, err := store.ParseBackend(os.Getenv(EnvStore))
	if err != nil {
		return nil, err
	}

	seedIfEmpty := false
	if v := os.Getenv(EnvSeedIfEmpty); v != "" {
		seedIfEmpty, err = strconv.ParseBool(v)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"invalid boolean", err, map[string]any{"variable": EnvSeedIfEmpty, "value": v})
		}
	}

	return &Config{
		Environment: getEnv(EnvAppEnv, defaultEnvironment),
		Store: store.Config{
			Backend:       backend,
			PebbleDir:     getEnv(EnvPebbleDir, defaultPebbleDir),
			MongoURI:      getEnv(EnvMongoURI, defaultMongoURI),
			MongoDatabase: getEnv(EnvMongoDatabase, defaultMongoDB),
			DatabaseURL:   getEnv(EnvDatabaseURL, ""),
		},
		SeedFile:    getEnv(EnvSeedFile, ""),
		SeedIfEmpty: seedIfEmpty,
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv(EnvKafkaBrokers)),
			Topic:   getEnv(EnvKafkaTopic, defaultKafkaTopic),
		},
		AllowedOrigins: Origins(os.Getenv(EnvFrontendURL), os.Getenv(EnvCORSOrigins)),
	}, nil
}

// Origins returns DefaultOrigins followed by frontendURL and the
// comma-separated extra list, without duplicates.
func Origins(frontendURL, extra string) []string {
	out := make([]string, 0, len(DefaultOrigins)+2)
	seen := make(map[string]bool)
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			return
		}
		seen[o] = true
		out = append(out, o)
	}

	for _, o := range DefaultOrigins {
		add(o)
	}
	add(frontendURL)
	for _, o := range splitList(extra) {
		add(o)
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
