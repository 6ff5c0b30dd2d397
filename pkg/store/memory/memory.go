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

// Package memory is a Store that keeps menu items in process memory.
// Ids are sequential decimal strings. Nothing survives a restart.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
)

// Store is a mutex-guarded, insertion-ordered item list.
type Store struct {
	mu     sync.RWMutex
	items  []menu.Item
	nextID int
}

var _ menu.Store = (*Store)(nil)

// New returns a store holding copies of seed. Explicit seed ids are kept;
// id-less items, and any repeat of an id already taken, are numbered from
// one past the largest numeric seed id, so no two items share an id.
// Callers that must reject duplicates run menu.CheckSeedIDs first.
func New(seed ...menu.Item) *Store {
	s := &Store{
		items:  make([]menu.Item, 0, len(seed)),
		nextID: 1,
	}
	for _, it := range seed {
		if n, err := strconv.Atoi(it.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}

	taken := make(map[string]bool, len(seed))
	for _, it := range seed {
		cp := it.Clone()
		if cp.ID == "" || taken[cp.ID] {
			cp.ID = strconv.Itoa(s.nextID)
			s.nextID++
		}
		taken[cp.ID] = true
		s.items = append(s.items, cp)
	}
	return s
}

// Insert implements menu.Store.
func (s *Store) Insert(_ context.Context, it menu.Item) (*menu.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := it.Clone()
	cp.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.items = append(s.items, cp)

	out := cp.Clone()
	return &out, nil
}

// FindByID implements menu.Store.
func (s *Store) FindByID(_ context.Context, id string) (*menu.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, menu.ErrNotFound
	}
	out := s.items[idx].Clone()
	return &out, nil
}

// FindAll implements menu.Store.
func (s *Store) FindAll(_ context.Context) ([]menu.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menu.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out, nil
}

// FindWhere implements menu.Store.
func (s *Store) FindWhere(_ context.Context, q menu.Query) ([]menu.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menu.Item, 0)
	for _, it := range s.items {
		if q.Matches(it) {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

// UpdateByID implements menu.Store.
func (s *Store) UpdateByID(_ context.Context, id string, p menu.Patch, at time.Time) (*menu.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, menu.ErrNotFound
	}
	p.Apply(&s.items[idx], at)

	out := s.items[idx].Clone()
	return &out, nil
}

// DeleteByID implements menu.Store.
func (s *Store) DeleteByID(_ context.Context, id string) (*menu.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, menu.ErrNotFound
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return &removed, nil
}

// Close implements menu.Store.
func (s *Store) Close() error {
	return nil
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
