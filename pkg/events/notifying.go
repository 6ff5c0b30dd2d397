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
	"log/slog"
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
)

// NotifyingStore is a menu.Store that publishes an Event after each
// successful mutation of the wrapped store.
type NotifyingStore struct {
	menu.Store
	publisher Publisher
	now       func() time.Time
}

var _ menu.Store = (*NotifyingStore)(nil)

// NewNotifyingStore wraps store so mutations are announced on publisher.
func NewNotifyingStore(store menu.Store, publisher Publisher) *NotifyingStore {
	return &NotifyingStore{
		Store:     store,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Insert implements menu.Store.
func (s *NotifyingStore) Insert(ctx context.Context, it menu.Item) (*menu.Item, error) {
	created, err := s.Store.Insert(ctx, it)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, TypeItemCreated, created)
	return created, nil
}

// UpdateByID implements menu.Store.
func (s *NotifyingStore) UpdateByID(ctx context.Context, id string, p menu.Patch, at time.Time) (*menu.Item, error) {
	updated, err := s.Store.UpdateByID(ctx, id, p, at)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, TypeItemUpdated, updated)
	return updated, nil
}

// DeleteByID implements menu.Store.
func (s *NotifyingStore) DeleteByID(ctx context.Context, id string) (*menu.Item, error) {
	removed, err := s.Store.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, TypeItemDeleted, removed)
	return removed, nil
}

// Ping implements menu.Pinger by delegating to the wrapped store.
func (s *NotifyingStore) Ping(ctx context.Context) error {
	if p, ok := s.Store.(menu.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close closes the publisher and the wrapped store.
func (s *NotifyingStore) Close() error {
	return errors.Join(s.publisher.Close(), s.Store.Close())
}

func (s *NotifyingStore) publish(ctx context.Context, t Type, it *menu.Item) {
	e := NewEvent(t, it, s.now())
	if err := s.publisher.Publish(ctx, e); err != nil {
		eventsPublished.WithLabelValues(string(t), "error").Inc()
		slog.Warn("failed to publish menu event",
			"type", t, "item_id", e.ItemID, "event_id", e.ID, "error", err)
		return
	}
	eventsPublished.WithLabelValues(string(t), "ok").Inc()
	slog.Debug("menu event published", "type", t, "item_id", e.ItemID)
}
