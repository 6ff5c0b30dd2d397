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

package serializer

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	t.Run("writes status and body", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondJSON(w, http.StatusCreated, map[string]any{"success": true})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
	})

	t.Run("encoding failure returns 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondJSON(w, http.StatusOK, map[string]float64{"preco": math.NaN()})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
	})
}

func TestNewHTTPClient_Options(t *testing.T) {
	c := NewHTTPClient(
		WithUserAgent("test-agent"),
		WithTotalTimeout(3*time.Second),
		WithInsecureSkipVerify(true),
	)

	assert.Equal(t, "test-agent", c.UserAgent)
	assert.Equal(t, 3*time.Second, c.Client.Timeout)

	tr, ok := c.Client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)

	assert.Equal(t, DefaultUserAgent, NewHTTPClient().UserAgent)
}

func TestHTTPClient_Do(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))

		body, _ := io.ReadAll(r.Body)
		if len(body) > 0 {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"method":"` + r.Method + `","body":` + string(orNull(body)) + `}`))
	}))
	defer ts.Close()

	c := NewHTTPClient()

	resp, err := c.Do(context.Background(), http.MethodPost, ts.URL, []byte(`{"nome":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.JSONEq(t, `{"method":"POST","body":{"nome":"x"}}`, string(resp.Body))

	resp, err = c.Do(context.Background(), http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"GET","body":null}`, string(resp.Body))

	_, err = c.Do(context.Background(), http.MethodGet, "", nil)
	assert.Error(t, err)
}

func orNull(b []byte) []byte {
	if len(b) == 0 {
		return []byte("null")
	}
	return b
}

func TestHTTPClient_Read(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"nome":"Laço Paula"}]`))
	}))
	defer ts.Close()

	c := NewHTTPClient()

	data, err := c.Read(context.Background(), ts.URL+"/catalog.json")
	require.NoError(t, err)
	assert.Equal(t, `[{"nome":"Laço Paula"}]`, string(data))

	_, err = c.Read(context.Background(), ts.URL+"/missing")
	assert.Error(t, err)
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient().Do(ctx, http.MethodGet, ts.URL, nil)
	assert.Error(t, err)
}
