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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardapio/menu-api/pkg/config"
	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Serve blocks until a signal arrives, so these tests exercise build and
// loadSeed, which hold everything Serve wires together.

func TestConstants(t *testing.T) {
	if name != "menud" {
		t.Errorf("name = %q, want %q", name, "menud")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func memoryConfig() *config.Config {
	return &config.Config{
		Environment:    "development",
		Store:          store.Config{Backend: store.BackendMemory},
		AllowedOrigins: config.DefaultOrigins,
	}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestBuildServesSeededCatalog(t *testing.T) {
	s, st, err := build(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer st.Close()

	h := s.Handler()

	w := do(t, h, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list menu.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.True(t, list.Success)
	assert.Equal(t, 7, list.Count)

	w = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), HealthMessage)

	w = do(t, h, http.MethodGet, "/api/menu/categoria/Kit", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, "1", list.Data[0].ID)
	assert.Equal(t, "6", list.Data[1].ID)
}

func TestBuildCRUD(t *testing.T) {
	s, st, err := build(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer st.Close()

	h := s.Handler()

	w := do(t, h, http.MethodPost, "/api/menu",
		`{"nome":"Tiara","descricao":"Tiara de cetim","preco":18.5,"categoria":"Tiaras"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created menu.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "8", created.Data.ID)
	assert.Equal(t, menu.MessageCreated, created.Message)

	w = do(t, h, http.MethodPut, "/api/menu/8", `{"preco":20}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodDelete, "/api/menu/8", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/menu/8", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildReadinessUsesStore(t *testing.T) {
	s, st, err := build(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer st.Close()

	// The server only reports ready once Run starts listening.
	w := do(t, s.Handler(), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBuildPersistentSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "menu")

	cfg := memoryConfig()
	cfg.Store = store.Config{Backend: store.BackendPebble, PebbleDir: dir}
	cfg.SeedIfEmpty = true

	_, st, err := build(ctx, cfg)
	require.NoError(t, err)
	all, err := st.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
	for _, it := range all {
		assert.False(t, it.CriadoEm.IsZero())
	}
	require.NoError(t, st.Close())

	// A second start finds data and does not seed again.
	_, st, err = build(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()
	all, err = st.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestBuildPersistentWithoutSeed(t *testing.T) {
	ctx := context.Background()

	cfg := memoryConfig()
	cfg.Store = store.Config{Backend: store.BackendPebble, PebbleDir: t.TempDir()}

	_, st, err := build(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()

	all, err := st.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBuildStoreError(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store = store.Config{Backend: store.BackendPostgres}

	_, _, err := build(context.Background(), cfg)
	require.Error(t, err)
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("default catalog", func(t *testing.T) {
		items, err := loadSeed("")
		require.NoError(t, err)
		assert.Len(t, items, 7)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := write("seed.yaml", `
- id: "10"
  nome: Tiara
  descricao: Tiara de cetim
  preco: 18.5
  categoria: Tiaras
  imagens: [tiara.png]
- nome: Presilha
  descricao: Presilha simples
  preco: 5
  categoria: Presilhas
`)
		items, err := loadSeed(path)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "10", items[0].ID)
		assert.Equal(t, "Presilha", items[1].Nome)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := write("dup.json", `[
			{"id":"1","nome":"A","descricao":"d","preco":1,"categoria":"T"},
			{"nome":"B","descricao":"d","preco":1,"categoria":"T"},
			{"id":"1","nome":"C","descricao":"d","preco":1,"categoria":"T"}
		]`)
		_, err := loadSeed(path)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
		assert.Contains(t, err.Error(), `duplicate seed id "1"`)
	})

	t.Run("json file", func(t *testing.T) {
		path := write("seed.json", `[{"nome":"Tiara","descricao":"d","preco":1,"categoria":"T"}]`)
		items, err := loadSeed(path)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("invalid item", func(t *testing.T) {
		path := write("bad.json", `[{"nome":"Tiara","descricao":"d","preco":-1,"categoria":"T"}]`)
		_, err := loadSeed(path)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
		assert.Contains(t, err.Error(), "index 0")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSeed(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
	})
}

func TestBuildWithSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`[{"nome":"Tiara","descricao":"d","preco":1,"categoria":"Tiaras"}]`), 0o600))

	cfg := memoryConfig()
	cfg.SeedFile = path

	s, st, err := build(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close()

	w := do(t, s.Handler(), http.MethodGet, "/api/menu/categorias/lista", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cats menu.CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Equal(t, []string{"Tiaras"}, cats.Data)
}
