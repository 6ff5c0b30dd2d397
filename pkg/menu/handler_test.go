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

package menu_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/server"
	"github.com/cardapio/menu-api/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, store menu.Store, opts ...server.Option) http.Handler {
	t.Helper()
	h := menu.NewHandler(menu.NewService(store, menu.WithClock((&clock{now: t0}).Now)))
	opts = append(opts, server.WithHandler(h.Routes()))
	return server.New(opts...).Handler()
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
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

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHandlerRoutes(t *testing.T) {
	routes := menu.NewHandler(nil).Routes()
	assert.Len(t, routes, 8)
	for _, pattern := range []string{
		"GET /api/menu",
		"GET /api/menu/categorias/lista",
		"GET /api/menu/categoria/{categoria}",
		"GET /api/menu/busca/{nome}",
		"GET /api/menu/{id}",
		"POST /api/menu",
		"PUT /api/menu/{id}",
		"DELETE /api/menu/{id}",
	} {
		assert.Contains(t, routes, pattern)
	}
}

func TestHandleList(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode[menu.ListResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 7, resp.Count)
	assert.Len(t, resp.Data, 7)
	assert.NotContains(t, w.Body.String(), "criadoEm", "seed items carry no timestamps")
	assert.Contains(t, w.Body.String(), `"imagens":[]`)
}

func TestHandleListEmptyStore(t *testing.T) {
	h := newHandler(t, memory.New())

	w := serve(h, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestHandleCategories(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodGet, "/api/menu/categorias/lista", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[menu.CategoriesResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"Kit", "Laços"}, resp.Data)
	assert.Equal(t, 2, resp.Count)
}

func TestHandleByCategory(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantIDs    []string
		wantEcho   string
	}{
		{"exact", "/api/menu/categoria/Kit", http.StatusOK, []string{"1", "6"}, "Kit"},
		{"folded and escaped", "/api/menu/categoria/LA%C3%87OS", http.StatusOK, []string{"2", "3", "4", "5", "7"}, "LAÇOS"},
		{"no match", "/api/menu/categoria/Tiaras", http.StatusNotFound, nil, ""},
		{"blank", "/api/menu/categoria/%20", http.StatusBadRequest, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				resp := decode[server.ErrorResponse](t, w)
				assert.False(t, resp.Success)
				if tt.wantStatus == http.StatusNotFound {
					assert.Equal(t, menu.MessageCategoryEmpty, resp.Message)
				}
				return
			}
			resp := decode[menu.ListResponse](t, w)
			assert.Equal(t, tt.wantIDs, ids(resp.Data))
			assert.Equal(t, len(tt.wantIDs), resp.Count)
			assert.Equal(t, tt.wantEcho, resp.Categoria)
		})
	}
}

func TestHandleSearch(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodGet, "/api/menu/busca/la%C3%A7o", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[menu.ListResponse](t, w)
	assert.Equal(t, []string{"1", "3", "4", "5", "6", "7"}, ids(resp.Data))
	assert.Equal(t, "laço", resp.Busca)

	w = serve(h, http.MethodGet, "/api/menu/busca/bolo", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	errResp := decode[server.ErrorResponse](t, w)
	assert.Equal(t, menu.MessageSearchEmpty, errResp.Message)
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestHandleGet(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodGet, "/api/menu/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[menu.ItemResponse](t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Laço Nanda com brilho", resp.Data.Nome)
	assert.Empty(t, resp.Message)

	w = serve(h, http.MethodGet, "/api/menu/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	errResp := decode[server.ErrorResponse](t, w)
	assert.False(t, errResp.Success)
	assert.Equal(t, menu.MessageNotFound, errResp.Message)
	assert.Equal(t, "99", errResp.Details["id"])
	assert.NotEmpty(t, errResp.RequestID)
}

func TestHandleCreate(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodPost, "/api/menu",
		`{"nome":"Tiara","descricao":"Tiara de cetim","preco":18.5,"categoria":"Tiaras","imagens":["t.png"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[menu.ItemResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, menu.MessageCreated, resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "8", resp.Data.ID)
	assert.Equal(t, t0, resp.Data.CriadoEm)
	assert.Equal(t, t0, resp.Data.AtualizadoEm)

	w = serve(h, http.MethodGet, "/api/menu/8", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleCreateRejects(t *testing.T) {
	h := newHandler(t, memory.New())

	tests := []struct {
		name       string
		body       string
		wantReason string
		wantFields int
	}{
		{"malformed", `{"nome":`, "malformed", 0},
		{"wrong type", `{"preco":"caro"}`, "malformed", 0},
		{"empty", ``, "empty", 0},
		{"trailing data", `{"nome":"a"} {"nome":"b"}`, "malformed", 0},
		{"too large", `{"nome":"` + strings.Repeat("a", 1<<20) + `"}`, "too_large", 0},
		{"invalid fields", `{"nome":"  ","preco":-3}`, "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h, http.MethodPost, "/api/menu", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			resp := decode[server.ErrorResponse](t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, "INVALID_REQUEST", resp.Code)
			assert.False(t, resp.Retryable)
			if tt.wantReason != "" {
				assert.Equal(t, menu.MessageInvalidBody, resp.Message)
				assert.Equal(t, tt.wantReason, resp.Details["reason"])
			}
			if tt.wantFields > 0 {
				assert.Equal(t, menu.MessageInvalidItem, resp.Message)
				fields, ok := resp.Details["fields"].([]any)
				require.True(t, ok)
				assert.Len(t, fields, tt.wantFields)
			}
		})
	}

	w := serve(h, http.MethodGet, "/api/menu", "")
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestHandleUpdate(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodPut, "/api/menu/5", `{"preco":14,"imagens":[]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[menu.ItemResponse](t, w)
	assert.Equal(t, menu.MessageUpdated, resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 14.0, resp.Data.Preco)
	assert.Equal(t, "Laço Paula", resp.Data.Nome)
	assert.Empty(t, resp.Data.Imagens)
	assert.Equal(t, t0, resp.Data.AtualizadoEm)

	w = serve(h, http.MethodPut, "/api/menu/5", `{"preco":-1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(h, http.MethodGet, "/api/menu/5", "")
	after := decode[menu.ItemResponse](t, w)
	assert.Equal(t, 14.0, after.Data.Preco)

	w = serve(h, http.MethodPut, "/api/menu/99", `{"preco":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(h, http.MethodPut, "/api/menu/5", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDelete(t *testing.T) {
	h := newHandler(t, memory.New(menu.DefaultCatalog()...))

	w := serve(h, http.MethodDelete, "/api/menu/2", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[menu.ItemResponse](t, w)
	assert.Equal(t, menu.MessageDeleted, resp.Message)
	assert.Equal(t, "2", resp.Data.ID)

	w = serve(h, http.MethodGet, "/api/menu/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(h, http.MethodDelete, "/api/menu/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerStorageFailure(t *testing.T) {
	store := brokenStore{err: errors.New("dial tcp: connection refused")}

	tests := []struct {
		name      string
		env       string
		wantCause bool
	}{
		{"development shows cause", "development", true},
		{"production hides cause", server.EnvironmentProduction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(t, store, server.WithEnvironment(tt.env))

			w := serve(h, http.MethodGet, "/api/menu", "")
			require.Equal(t, http.StatusInternalServerError, w.Code)

			resp := decode[server.ErrorResponse](t, w)
			assert.Equal(t, server.MessageInternalError, resp.Message)
			assert.Equal(t, "STORAGE_ERROR", resp.Code)
			assert.True(t, resp.Retryable)
			if tt.wantCause {
				assert.Contains(t, resp.Error, "connection refused")
			} else {
				assert.Empty(t, resp.Error)
				assert.NotContains(t, w.Body.String(), "connection refused")
			}
		})
	}
}

func TestHandlerUnknownRoute(t *testing.T) {
	h := newHandler(t, memory.New())

	w := serve(h, http.MethodPatch, "/api/menu/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[server.ErrorResponse](t, w)
	assert.Equal(t, server.MessageRouteNotFound, resp.Message)
	assert.Equal(t, "/api/menu/1", resp.Path)
	assert.Equal(t, http.MethodPatch, resp.Method)
}
