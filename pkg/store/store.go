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

// Package store selects and opens the menu.Store backend named by
// configuration.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cardapio/menu-api/pkg/defaults"
	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/store/memory"
	"github.com/cardapio/menu-api/pkg/store/mongo"
	"github.com/cardapio/menu-api/pkg/store/pebble"
	"github.com/cardapio/menu-api/pkg/store/postgres"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPebble   Backend = "pebble"
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
)

// SupportedBackends lists the accepted Backend values.
var SupportedBackends = []Backend{BackendMemory, BackendPebble, BackendMongo, BackendPostgres}

// ParseBackend returns the backend for s, case-insensitively. Empty
// selects memory.
func ParseBackend(s string) (Backend, error) {
	v := Backend(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return BackendMemory, nil
	}
	for _, b := range SupportedBackends {
		if v == b {
			return b, nil
		}
	}
	return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
		fmt.Sprintf("unsupported store backend %q", s),
		map[string]any{"supported": SupportedBackends})
}

// Persistent reports whether data survives a restart.
func (b Backend) Persistent() bool {
	return b != BackendMemory
}

// Config holds the settings every backend may need.
type Config struct {
	Backend       Backend
	PebbleDir     string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
}

// Open builds the configured backend. seed is loaded into the memory
// backend only; persistent backends are seeded by the service.
func Open(ctx context.Context, cfg Config, seed []menu.Item) (menu.Store, error) {
	slog.Info("opening menu store", "backend", cfg.Backend)

	switch cfg.Backend {
	case BackendMemory, "":
		if err := menu.CheckSeedIDs(seed); err != nil {
			return nil, err
		}
		return memory.New(seed...), nil

	case BackendPebble:
		if cfg.PebbleDir == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "pebble backend requires a directory")
		}
		s, err := pebble.Open(cfg.PebbleDir)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeStorage, "failed to open pebble store", err)
		}
		return s, nil

	case BackendMongo:
		if cfg.MongoURI == "" || cfg.MongoDatabase == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "mongo backend requires a uri and database")
		}
		s, err := mongo.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeStorage, "failed to open mongo store", err)
		}
		return s, nil

	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "postgres backend requires DATABASE_URL")
		}
		ctx, cancel := context.WithTimeout(ctx, defaults.StoreConnectTimeout)
		defer cancel()
		s, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeStorage, "failed to open postgres store", err)
		}
		return s, nil

	default:
		_, err := ParseBackend(string(cfg.Backend))
		return nil, err
	}
}
