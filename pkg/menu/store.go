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
	"time"
)

// ErrNotFound is returned by a Store when no item has the requested id.
// Ids a backend cannot parse are reported the same way.
var ErrNotFound = errors.New("menu item not found")

// Store persists menu items. Implementations assign ids on Insert, return
// copies the caller may mutate, and report absence with ErrNotFound.
type Store interface {
	// Insert stores it under a new id and returns the persisted record.
	Insert(ctx context.Context, it Item) (*Item, error)
	// FindByID returns the item with id.
	FindByID(ctx context.Context, id string) (*Item, error)
	// FindAll returns every item in the backend's stable order.
	FindAll(ctx context.Context) ([]Item, error)
	// FindWhere returns the items matching q in FindAll order.
	FindWhere(ctx context.Context, q Query) ([]Item, error)
	// UpdateByID applies p, sets AtualizadoEm to at and returns the result.
	UpdateByID(ctx context.Context, id string, p Patch, at time.Time) (*Item, error)
	// DeleteByID removes the item and returns its last state.
	DeleteByID(ctx context.Context, id string) (*Item, error)
	// Close releases backend resources.
	Close() error
}

// Pinger is implemented by stores that can check backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
