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

// Package client is a Go client for the menu HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/serializer"
	"github.com/cardapio/menu-api/pkg/server"
)

// DefaultBaseURL is where a local menud listens.
const DefaultBaseURL = "http://localhost:3000"

const menuPath = "/api/menu"

// Client calls a menu API server.
type Client struct {
	baseURL string
	http    *serializer.HTTPClient
}

// New returns a client for the server at baseURL.
func New(baseURL string, opts ...serializer.HTTPClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    serializer.NewHTTPClient(opts...),
	}
}

// List returns every item.
func (c *Client) List(ctx context.Context) ([]menu.Item, error) {
	var resp menu.ListResponse
	if err := c.call(ctx, http.MethodGet, menuPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get returns the item with id.
func (c *Client) Get(ctx context.Context, id string) (*menu.Item, error) {
	var resp menu.ItemResponse
	if err := c.call(ctx, http.MethodGet, itemPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ByCategory returns the items whose categoria contains categoria. The
// server reports an empty result as NOT_FOUND.
func (c *Client) ByCategory(ctx context.Context, categoria string) ([]menu.Item, error) {
	var resp menu.ListResponse
	p := menuPath + "/categoria/" + url.PathEscape(categoria)
	if err := c.call(ctx, http.MethodGet, p, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Search returns the items whose nome contains nome. The server reports an
// empty result as NOT_FOUND.
func (c *Client) Search(ctx context.Context, nome string) ([]menu.Item, error) {
	var resp menu.ListResponse
	p := menuPath + "/busca/" + url.PathEscape(nome)
	if err := c.call(ctx, http.MethodGet, p, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Categories returns the distinct categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp menu.CategoriesResponse
	if err := c.call(ctx, http.MethodGet, menuPath+"/categorias/lista", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create adds an item.
func (c *Client) Create(ctx context.Context, in menu.Input) (*menu.Item, error) {
	var resp menu.ItemResponse
	if err := c.call(ctx, http.MethodPost, menuPath, in, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update applies p to the item with id.
func (c *Client) Update(ctx context.Context, id string, p menu.Patch) (*menu.Item, error) {
	var resp menu.ItemResponse
	if err := c.call(ctx, http.MethodPut, itemPath(id), p, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete removes the item with id and returns its last state.
func (c *Client) Delete(ctx context.Context, id string) (*menu.Item, error) {
	var resp menu.ItemResponse
	if err := c.call(ctx, http.MethodDelete, itemPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func itemPath(id string) string {
	return menuPath + "/" + url.PathEscape(id)
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = b
	}

	resp, err := c.http.Do(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "menu API unreachable", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to decode response", err)
	}
	return nil
}

// decodeError turns an error envelope into a StructuredError carrying the
// server's code, message and request id.
func decodeError(resp *serializer.Response) error {
	var env server.ErrorResponse
	if err := json.Unmarshal(resp.Body, &env); err != nil || env.Code == "" {
		return apperrors.NewWithContext(apperrors.ErrCodeInternal,
			fmt.Sprintf("unexpected response status %d", resp.StatusCode),
			map[string]any{"status": resp.StatusCode})
	}

	ctx := map[string]any{"status": resp.StatusCode}
	for k, v := range env.Details {
		ctx[k] = v
	}
	if env.RequestID != "" {
		ctx["requestId"] = env.RequestID
	}

	se := apperrors.NewWithContext(apperrors.ErrorCode(env.Code), env.Message, ctx)
	if env.Error != "" {
		se.Cause = errors.New(env.Error)
	}
	return se
}
