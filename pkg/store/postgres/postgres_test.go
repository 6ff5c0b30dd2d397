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

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envTestURL = "MENU_TEST_DATABASE_URL"

func TestConformance(t *testing.T) {
	url := os.Getenv(envTestURL)
	if url == "" {
		t.Skipf("%s not set", envTestURL)
	}

	storetest.Run(t, func(t *testing.T) menu.Store {
		ctx := context.Background()
		s, err := Open(ctx, url)
		require.NoError(t, err)
		_, err = s.pool.Exec(ctx, `TRUNCATE menu_items RESTART IDENTITY`)
		require.NoError(t, err)
		return s
	})
}

func TestFindWhereFoldsAccents(t *testing.T) {
	url := os.Getenv(envTestURL)
	if url == "" {
		t.Skipf("%s not set", envTestURL)
	}

	ctx := context.Background()
	s, err := Open(ctx, url)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.pool.Exec(ctx, `TRUNCATE menu_items RESTART IDENTITY`)
	require.NoError(t, err)

	var ctype string
	require.NoError(t, s.pool.QueryRow(ctx, `SHOW lc_ctype`).Scan(&ctype))
	if asciiOnlyLocale(ctype) {
		t.Skipf("database lc_ctype %q folds ASCII only", ctype)
	}

	_, err = s.Insert(ctx, storetest.Item("Laço Paula", "Laços"))
	require.NoError(t, err)

	got, err := s.FindWhere(ctx, menu.Query{Field: menu.FieldCategoria, Term: "LAÇOS"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = s.FindWhere(ctx, menu.Query{Field: menu.FieldNome, Term: "LAÇO"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAsciiOnlyLocale(t *testing.T) {
	tests := []struct {
		ctype string
		want  bool
	}{
		{"C", true},
		{"POSIX", true},
		{"C.UTF-8", false},
		{"en_US.UTF-8", false},
		{"pt_BR.utf8", false},
	}

	for _, tt := range tests {
		t.Run(tt.ctype, func(t *testing.T) {
			assert.Equal(t, tt.want, asciiOnlyLocale(tt.ctype))
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseID(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"kit", "%kit%"},
		{"10%", `%10\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.term))
		})
	}
}

func TestSearchColumns(t *testing.T) {
	assert.Equal(t, "nome", searchColumns[menu.FieldNome])
	assert.Equal(t, "categoria", searchColumns[menu.FieldCategoria])
	assert.Len(t, searchColumns, 2)
}
