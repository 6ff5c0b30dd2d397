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

// Package pebble is a durable Store on an embedded Pebble key-value
// database. Items are JSON documents keyed by time-ordered UUIDv7 ids, so a
// prefix scan yields insertion order.
package pebble

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"
)

const keyPrefix = "item/"

var (
	lowerBound = []byte(keyPrefix)
	upperBound = []byte("item0") // '/' + 1
)

// Option configures the underlying Pebble database.
type Option func(*pebble.Options)

// WithFS replaces the filesystem, e.g. vfs.NewMem() in tests.
func WithFS(fs vfs.FS) Option {
	return func(o *pebble.Options) {
		o.FS = fs
	}
}

// Store persists menu items in Pebble.
type Store struct {
	db *pebble.DB
	// mu serializes read-modify-write cycles so a concurrent delete cannot
	// be undone by an in-flight update.
	mu sync.Mutex
}

var _ menu.Store = (*Store)(nil)

// Open opens (creating if needed) the database in dir.
func Open(dir string, opts ...Option) (*Store, error) {
	o := &pebble.Options{}
	for _, opt := range opts {
		opt(o)
	}

	db, err := pebble.Open(dir, o)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func keyFor(id string) []byte {
	return []byte(keyPrefix + id)
}

// Insert implements menu.Store.
func (s *Store) Insert(ctx context.Context, it menu.Item) (*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate item id: %w", err)
	}

	rec := it.Clone()
	rec.ID = id.String()
	if err := s.put(rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByID implements menu.Store.
func (s *Store) FindByID(ctx context.Context, id string) (*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.get(id)
}

// FindAll implements menu.Store.
func (s *Store) FindAll(ctx context.Context) ([]menu.Item, error) {
	return s.scan(ctx, func(menu.Item) bool { return true })
}

// FindWhere implements menu.Store.
func (s *Store) FindWhere(ctx context.Context, q menu.Query) ([]menu.Item, error) {
	return s.scan(ctx, q.Matches)
}

// UpdateByID implements menu.Store.
func (s *Store) UpdateByID(ctx context.Context, id string, p menu.Patch, at time.Time) (*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.get(id)
	if err != nil {
		return nil, err
	}
	p.Apply(it, at)
	if err := s.put(*it); err != nil {
		return nil, err
	}
	return it, nil
}

// DeleteByID implements menu.Store.
func (s *Store) DeleteByID(ctx context.Context, id string) (*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(keyFor(id), pebble.Sync); err != nil {
		return nil, fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	return it, nil
}

// Ping reports whether the database is open and readable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, closer, err := s.db.Get([]byte(keyPrefix))
	if err == nil {
		return closer.Close()
	}
	if errors.Is(err, pebble.ErrNotFound) {
		return nil
	}
	return err
}

// Close implements menu.Store.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(id string) (*menu.Item, error) {
	val, closer, err := s.db.Get(keyFor(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, menu.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read item %s: %w", id, err)
	}
	defer closer.Close()

	var it menu.Item
	if err := json.Unmarshal(val, &it); err != nil {
		return nil, fmt.Errorf("failed to decode item %s: %w", id, err)
	}
	return &it, nil
}

func (s *Store) put(it menu.Item) error {
	val, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to encode item %s: %w", it.ID, err)
	}
	if err := s.db.Set(keyFor(it.ID), val, pebble.Sync); err != nil {
		return fmt.Errorf("failed to write item %s: %w", it.ID, err)
	}
	return nil
}

func (s *Store) scan(ctx context.Context, keep func(menu.Item) bool) ([]menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lowerBound,
		UpperBound: upperBound,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open iterator: %w", err)
	}
	defer iter.Close()

	out := make([]menu.Item, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		var it menu.Item
		if err := json.Unmarshal(iter.Value(), &it); err != nil {
			return nil, fmt.Errorf("failed to decode item at %s: %w", iter.Key(), err)
		}
		if keep(it) {
			out = append(out, it)
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to scan items: %w", err)
	}
	return out, nil
}
