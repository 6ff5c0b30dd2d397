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

package pebble

import (
	"context"
	"testing"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/store/storetest"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T, fs vfs.FS) *Store {
	t.Helper()
	s, err := Open("/db", WithFS(fs))
	require.NoError(t, err)
	return s
}

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) menu.Store {
		return openMem(t, vfs.NewMem())
	})
}

func TestReopenKeepsItems(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()

	s := openMem(t, fs)
	a, err := s.Insert(ctx, storetest.Item("Kit", "Kit"))
	require.NoError(t, err)
	b, err := s.Insert(ctx, storetest.Item("Laco", "Lacos"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := openMem(t, fs)
	defer reopened.Close()

	all, err := reopened.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
}

func TestOnDisk(t *testing.T) {
	ctx := context.Background()

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Insert(ctx, storetest.Item("Kit", "Kit"))
	require.NoError(t, err)
	assert.NoError(t, s.Ping(ctx))
}

func TestPing(t *testing.T) {
	s := openMem(t, vfs.NewMem())
	defer s.Close()

	assert.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}

func TestCanceledContext(t *testing.T) {
	s := openMem(t, vfs.NewMem())
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Insert(ctx, storetest.Item("Kit", "Kit"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
