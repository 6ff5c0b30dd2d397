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

package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/store/memory"
	"github.com/cardapio/menu-api/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
	closed bool
}

func (f *fakePublisher) Publish(_ context.Context, e Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakePublisher) types() []Type {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Type, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

func TestNotifyingStoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) menu.Store {
		return NewNotifyingStore(memory.New(), &fakePublisher{})
	})
}

func TestNotifyingStorePublishesMutations(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	s := NewNotifyingStore(memory.New(), pub)
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	s.now = func() time.Time { return at }

	created, err := s.Insert(ctx, storetest.Item("Kit", "Kit"))
	require.NoError(t, err)

	nome := "Kit Grande"
	_, err = s.UpdateByID(ctx, created.ID, menu.Patch{Nome: &nome}, at)
	require.NoError(t, err)

	_, err = s.FindAll(ctx)
	require.NoError(t, err)

	_, err = s.DeleteByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, []Type{TypeItemCreated, TypeItemUpdated, TypeItemDeleted}, pub.types())

	for _, e := range pub.events {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, created.ID, e.ItemID)
		assert.Equal(t, at, e.OccurredAt)
		require.NotNil(t, e.Item)
	}
	assert.Equal(t, "Kit Grande", pub.events[1].Item.Nome)
	assert.Equal(t, "Kit Grande", pub.events[2].Item.Nome)
}

func TestNotifyingStoreSkipsFailedMutations(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	s := NewNotifyingStore(memory.New(), pub)

	_, err := s.DeleteByID(ctx, "404")
	assert.ErrorIs(t, err, menu.ErrNotFound)

	_, err = s.UpdateByID(ctx, "404", menu.Patch{}, time.Now())
	assert.ErrorIs(t, err, menu.ErrNotFound)

	assert.Empty(t, pub.types())
}

func TestNotifyingStoreSwallowsPublishErrors(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{err: errors.New("broker down")}
	s := NewNotifyingStore(memory.New(), pub)

	created, err := s.Insert(ctx, storetest.Item("Kit", "Kit"))
	require.NoError(t, err)

	got, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kit", got.Nome)
}

func TestNotifyingStoreClose(t *testing.T) {
	pub := &fakePublisher{}
	s := NewNotifyingStore(memory.New(), pub)

	require.NoError(t, s.Close())
	assert.True(t, pub.closed)
}

func TestNotifyingStorePing(t *testing.T) {
	s := NewNotifyingStore(memory.New(), &fakePublisher{})
	assert.NoError(t, s.Ping(context.Background()))
}

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.FixedZone("BRT", -3*3600))
	it := storetest.Item("Kit", "Kit")
	it.ID = "9"

	e := NewEvent(TypeItemCreated, &it, at)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "9", e.ItemID)
	assert.Equal(t, time.UTC, e.OccurredAt.Location())
	assert.True(t, at.Equal(e.OccurredAt))

	it.Imagens[0] = "changed.png"
	assert.Equal(t, []string{"Kit.png"}, e.Item.Imagens)

	empty := NewEvent(TypeItemDeleted, nil, at)
	assert.Nil(t, empty.Item)
	assert.Empty(t, empty.ItemID)
}
