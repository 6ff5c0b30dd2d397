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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	items := DefaultCatalog()
	require.Len(t, items, 7)

	for i, it := range items {
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}[i], it.ID)
		assert.NoError(t, it.Validate(), "item %s", it.ID)
		assert.NotNil(t, it.Imagens, "item %s", it.ID)
		assert.True(t, it.CriadoEm.IsZero())
	}

	assert.Contains(t, items[0].Descricao, "\n")

	items[1].Imagens[0] = "changed.jpg"
	assert.Equal(t, "RosaNoBico.jpg", DefaultCatalog()[1].Imagens[0])
}

func TestCheckSeedIDs(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr bool
	}{
		{name: "default catalog", ids: []string{"1", "2", "3"}},
		{name: "empty ids allowed", ids: []string{"", "", "1"}},
		{name: "no items", ids: nil},
		{name: "duplicate numeric", ids: []string{"1", "2", "1"}, wantErr: true},
		{name: "duplicate text", ids: []string{"x", "", "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]Item, len(tt.ids))
			for i, id := range tt.ids {
				items[i].ID = id
			}
			err := CheckSeedIDs(items)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}

	assert.NoError(t, CheckSeedIDs(DefaultCatalog()))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Kit", "Laços"}, Categories(DefaultCatalog()))
	assert.Equal(t, []string{}, Categories(nil))

	got := Categories([]Item{{Categoria: "b"}, {Categoria: "B"}, {Categoria: "a"}, {Categoria: "b"}})
	assert.Equal(t, []string{"B", "a", "b"}, got)
}

func TestItemsTable(t *testing.T) {
	items := Items{
		{ID: "1", Nome: "Laço", Categoria: "Laços", Preco: 12, Imagens: []string{"a.png", "b.png"}},
		{ID: "2", Nome: "Kit", Categoria: "Kit", Preco: 16.5},
	}

	assert.Equal(t, []string{"ID", "NOME", "CATEGORIA", "PRECO", "IMAGENS"}, items.TableHeader())
	assert.Equal(t, [][]string{
		{"1", "Laço", "Laços", "12.00", "a.png,b.png"},
		{"2", "Kit", "Kit", "16.50", ""},
	}, items.TableRows())
}

func TestItemTable(t *testing.T) {
	it := DefaultCatalog()[4]
	assert.Equal(t, []string{"CAMPO", "VALOR"}, it.TableHeader())

	rows := it.TableRows()
	require.Len(t, rows, 6, "zero timestamps are omitted")
	assert.Equal(t, []string{"id", "5"}, rows[0])
	assert.Equal(t, []string{"preco", "12.00"}, rows[3])

	it.CriadoEm = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rows = it.TableRows()
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"criadoEm", "2025-01-02T03:04:05Z"}, rows[6])
}

func TestCategoriasTable(t *testing.T) {
	c := Categorias{"Kit", "Laços"}
	assert.Equal(t, []string{"CATEGORIA"}, c.TableHeader())
	assert.Equal(t, [][]string{{"Kit"}, {"Laços"}}, c.TableRows())
}
