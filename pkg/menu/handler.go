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
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cardapio/menu-api/pkg/defaults"
	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/serializer"
	"github.com/cardapio/menu-api/pkg/server"
)

// ListResponse is the success envelope for item lists.
type ListResponse struct {
	Success   bool   `json:"success" yaml:"success"`
	Data      []Item `json:"data" yaml:"data"`
	Count     int    `json:"count" yaml:"count"`
	Categoria string `json:"categoria,omitempty" yaml:"categoria,omitempty"`
	Busca     string `json:"busca,omitempty" yaml:"busca,omitempty"`
}

// CategoriesResponse is the success envelope for the category list.
type CategoriesResponse struct {
	Success bool     `json:"success" yaml:"success"`
	Data    []string `json:"data" yaml:"data"`
	Count   int      `json:"count" yaml:"count"`
}

// ItemResponse is the success envelope for single-item operations.
type ItemResponse struct {
	Success bool   `json:"success" yaml:"success"`
	Data    *Item  `json:"data" yaml:"data"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Handler exposes a Service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns a Handler for svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes returns the menu routes keyed by http.ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /api/menu":                       h.HandleList,
		"GET /api/menu/categorias/lista":      h.HandleCategories,
		"GET /api/menu/categoria/{categoria}": h.HandleByCategory,
		"GET /api/menu/busca/{nome}":          h.HandleSearch,
		"GET /api/menu/{id}":                  h.HandleGet,
		"POST /api/menu":                      h.HandleCreate,
		"PUT /api/menu/{id}":                  h.HandleUpdate,
		"DELETE /api/menu/{id}":               h.HandleDelete,
	}
}

// HandleList serves GET /api/menu.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	items, err := h.svc.FindAll(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ListResponse{
		Success: true,
		Data:    items,
		Count:   len(items),
	})
}

// HandleCategories serves GET /api/menu/categorias/lista.
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	cats, err := h.svc.FindAllCategories(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, CategoriesResponse{
		Success: true,
		Data:    cats,
		Count:   len(cats),
	})
}

// HandleByCategory serves GET /api/menu/categoria/{categoria}. An empty
// result is reported as 404.
func (h *Handler) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	categoria := r.PathValue("categoria")
	items, err := h.svc.FindByCategory(ctx, categoria)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	if len(items) == 0 {
		server.WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			MessageCategoryEmpty, false, map[string]any{"categoria": categoria})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ListResponse{
		Success:   true,
		Data:      items,
		Count:     len(items),
		Categoria: categoria,
	})
}

// HandleSearch serves GET /api/menu/busca/{nome}. An empty result is
// reported as 404.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	nome := r.PathValue("nome")
	items, err := h.svc.SearchByName(ctx, nome)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	if len(items) == 0 {
		server.WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			MessageSearchEmpty, false, map[string]any{"busca": nome})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ListResponse{
		Success: true,
		Data:    items,
		Count:   len(items),
		Busca:   nome,
	})
}

// HandleGet serves GET /api/menu/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	it, err := h.svc.FindOne(ctx, r.PathValue("id"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ItemResponse{Success: true, Data: it})
}

// HandleCreate serves POST /api/menu.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	var in Input
	if err := decodeBody(w, r, &in); err != nil {
		writeBodyError(w, r, err)
		return
	}

	it, err := h.svc.Create(ctx, in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusCreated, ItemResponse{
		Success: true,
		Data:    it,
		Message: MessageCreated,
	})
}

// HandleUpdate serves PUT /api/menu/{id} with partial-update semantics.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	var p Patch
	if err := decodeBody(w, r, &p); err != nil {
		writeBodyError(w, r, err)
		return
	}

	it, err := h.svc.Update(ctx, r.PathValue("id"), p)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ItemResponse{
		Success: true,
		Data:    it,
		Message: MessageUpdated,
	})
}

// HandleDelete serves DELETE /api/menu/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	it, err := h.svc.Remove(ctx, r.PathValue("id"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, server.MessageInternalError, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ItemResponse{
		Success: true,
		Data:    it,
		Message: MessageDeleted,
	})
}

// decodeBody reads a single JSON document of at most MaxRequestBodyBytes.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	details := map[string]any{"reason": "malformed"}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		details = map[string]any{"reason": "too_large", "limit": maxErr.Limit}
	case errors.Is(err, io.EOF):
		details = map[string]any{"reason": "empty"}
	}

	server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
		MessageInvalidBody, false, details)
}
