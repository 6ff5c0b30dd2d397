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
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/google/uuid"
)

// Type identifies what happened to an item.
type Type string

const (
	TypeItemCreated Type = "menu.item.created"
	TypeItemUpdated Type = "menu.item.updated"
	TypeItemDeleted Type = "menu.item.deleted"
)

// Event describes one committed mutation. Item is the state after the
// change, or the last state for deletions.
type Event struct {
	ID         string     `json:"id"`
	Type       Type       `json:"type"`
	ItemID     string     `json:"itemId"`
	Item       *menu.Item `json:"item"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// NewEvent returns an event with a fresh id.
func NewEvent(t Type, it *menu.Item, at time.Time) Event {
	e := Event{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: at.UTC(),
	}
	if it != nil {
		cp := it.Clone()
		e.Item = &cp
		e.ItemID = it.ID
	}
	return e
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}
