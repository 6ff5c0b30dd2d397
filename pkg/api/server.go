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

package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardapio/menu-api/pkg/config"
	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/events"
	"github.com/cardapio/menu-api/pkg/logging"
	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/serializer"
	"github.com/cardapio/menu-api/pkg/server"
	"github.com/cardapio/menu-api/pkg/store"
)

const (
	name           = "menud"
	versionDefault = "dev"

	// HealthMessage is reported by GET /health.
	HealthMessage = "API do Cardápio está funcionando"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/cardapio/menu-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, opens the configured store, sets up routes, and
// handles graceful shutdown. The store is closed on return.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	s, st, err := build(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Warn("failed to close store", "error", closeErr)
		}
	}()

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// build opens, seeds and wraps the store and returns a server exposing it.
// The caller owns the returned store.
func build(ctx context.Context, cfg *config.Config) (*server.Server, menu.Store, error) {
	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(ctx, cfg.Store, seed)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Store.Backend.Persistent() && cfg.SeedIfEmpty {
		n, err := menu.NewService(st).SeedIfEmpty(ctx, seed)
		if err != nil {
			_ = st.Close()
			return nil, nil, err
		}
		slog.Info("store seeded", "backend", cfg.Store.Backend, "items", n)
	}

	if cfg.Kafka.Enabled() {
		slog.Info("publishing menu events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
		st = events.NewNotifyingStore(st, events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic))
	}

	svc := menu.NewService(st)
	h := menu.NewHandler(svc)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithEnvironment(cfg.Environment),
		server.WithHealthMessage(HealthMessage),
		server.WithAllowedOrigins(cfg.AllowedOrigins...),
		server.WithReadinessCheck(svc.Ping),
		server.WithHandler(h.Routes()),
	)

	return s, st, nil
}

// loadSeed returns the items in path, or the built-in catalog when path
// is empty.
func loadSeed(path string) ([]menu.Item, error) {
	if path == "" {
		return menu.DefaultCatalog(), nil
	}

	items, err := serializer.FromFile[[]menu.Item](path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to load seed file", err)
	}

	for i, it := range *items {
		if err := it.Validate(); err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid seed item at index %d", i), err,
				map[string]any{"path": path, "fields": menu.FieldErrors(err)})
		}
	}

	if err := menu.CheckSeedIDs(*items); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid seed file", err, map[string]any{"path": path})
	}

	slog.Info("loaded seed file", "path", path, "items", len(*items))
	return *items, nil
}
