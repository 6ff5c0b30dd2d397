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

package menu

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cardapio/menu-api/pkg/defaults"
	"github.com/prometheus/client_golang/prometheus"
)

// Service answers menu queries and performs mutations over a Store.
// It validates input, stamps timestamps and translates store failures into
// structured errors.
type Service struct {
	store Store
	now   func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces the time source used for criadoEm/atualizadoEm.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService returns a Service backed by store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in and inserts a new item.
func (s *Service) Create(ctx context.Context, in Input) (*Item, error) {
	if err := in.Validate(); err != nil {
		validationFailures.WithLabelValues("create").Inc()
		return nil, err
	}

	it := in.Item()
	now := s.now()
	it.CriadoEm = now
	it.AtualizadoEm = now

	ctx, done := s.call(ctx, "insert")
	defer done()

	created, err := s.store.Insert(ctx, it)
	if err != nil {
		return nil, s.fail("insert", "", err)
	}

	slog.Debug("menu item created", "id", created.ID)
	return normalized(created), nil
}

// FindAll returns every item.
func (s *Service) FindAll(ctx context.Context) ([]Item, error) {
	ctx, done := s.call(ctx, "find_all")
	defer done()

	items, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, s.fail("find_all", "", err)
	}
	return normalizedAll(items), nil
}

// FindOne returns the item with id.
func (s *Service) FindOne(ctx context.Context, id string) (*Item, error) {
	ctx, done := s.call(ctx, "find_by_id")
	defer done()

	it, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("find_by_id", id, err)
	}
	return normalized(it), nil
}

// FindByCategory returns the items whose categoria contains categoria,
// ignoring case. An empty result is not an error.
func (s *Service) FindByCategory(ctx context.Context, categoria string) ([]Item, error) {
	term := strings.TrimSpace(categoria)
	if term == "" {
		return nil, blankTermError(MessageInvalidCategoria, "categoria")
	}
	return s.findWhere(ctx, Query{Field: FieldCategoria, Term: term})
}

// SearchByName returns the items whose nome contains term, ignoring case.
// An empty result is not an error.
func (s *Service) SearchByName(ctx context.Context, term string) ([]Item, error) {
	t := strings.TrimSpace(term)
	if t == "" {
		return nil, blankTermError(MessageInvalidSearch, "nome")
	}
	return s.findWhere(ctx, Query{Field: FieldNome, Term: t})
}

func (s *Service) findWhere(ctx context.Context, q Query) ([]Item, error) {
	ctx, done := s.call(ctx, "find_where")
	defer done()

	items, err := s.store.FindWhere(ctx, q)
	if err != nil {
		return nil, s.fail("find_where", "", err)
	}
	return normalizedAll(items), nil
}

// FindAllCategories returns the distinct categoria values sorted byte-wise.
func (s *Service) FindAllCategories(ctx context.Context) ([]string, error) {
	items, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(items), nil
}

// Categories returns the distinct categoria values of items, sorted.
func Categories(items []Item) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Categoria]; ok {
			continue
		}
		seen[it.Categoria] = struct{}{}
		out = append(out, it.Categoria)
	}
	sort.Strings(out)
	return out
}

// Update applies the fields present in p to the item with id. The patch is
// validated before the store is touched, so a rejected patch changes
// nothing. An empty patch only refreshes atualizadoEm.
func (s *Service) Update(ctx context.Context, id string, p Patch) (*Item, error) {
	if err := p.Validate(); err != nil {
		validationFailures.WithLabelValues("update").Inc()
		return nil, err
	}

	ctx, done := s.call(ctx, "update")
	defer done()

	updated, err := s.store.UpdateByID(ctx, id, p.Normalized(), s.now())
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	slog.Debug("menu item updated", "id", id)
	return normalized(updated), nil
}

// Remove deletes the item with id and returns its last state.
func (s *Service) Remove(ctx context.Context, id string) (*Item, error) {
	ctx, done := s.call(ctx, "delete")
	defer done()

	removed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, s.fail("delete", id, err)
	}

	slog.Debug("menu item removed", "id", id)
	return normalized(removed), nil
}

// SeedIfEmpty inserts items when the store holds none and reports how many
// were written. Ids are assigned by the store; timestamps by the service.
func (s *Service) SeedIfEmpty(ctx context.Context, items []Item) (int, error) {
	existing, err := s.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := s.now()
	for i, it := range items {
		rec := it.Clone()
		rec.ID = ""
		rec.CriadoEm = now
		rec.AtualizadoEm = now
		if err := s.seedOne(ctx, rec); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func (s *Service) seedOne(ctx context.Context, rec Item) error {
	ctx, done := s.call(ctx, "insert")
	defer done()

	if _, err := s.store.Insert(ctx, rec); err != nil {
		return s.fail("insert", "", err)
	}
	return nil
}

// Ping checks backend connectivity when the store supports it.
func (s *Service) Ping(ctx context.Context) error {
	if p, ok := s.store.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// call bounds a store call and records its latency.
func (s *Service) call(ctx context.Context, op string) (context.Context, func()) {
	timer := prometheus.NewTimer(storeOperationDuration.WithLabelValues(op))
	ctx, cancel := context.WithTimeout(ctx, defaults.MenuStoreCallTimeout)
	return ctx, func() {
		cancel()
		timer.ObserveDuration()
	}
}

func (s *Service) fail(op, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return notFoundError(id)
	}
	storeErrors.WithLabelValues(op).Inc()
	slog.Error("menu store operation failed", "operation", op, "id", id, "error", err)
	return storageError(op, err)
}

func normalized(it *Item) *Item {
	out := it.Clone()
	return &out
}

func normalizedAll(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
