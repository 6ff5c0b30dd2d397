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

// Package storetest provides a conformance suite that every menu.Store
// backend runs from its own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store. The suite closes it.
type Factory func(t *testing.T) menu.Store

var (
	created = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	updated = time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Item builds a fixture with the given name and category.
func Item(nome, categoria string) menu.Item {
	return menu.Item{
		Nome:         nome,
		Descricao:    "descricao de " + nome,
		Preco:        12.5,
		Categoria:    categoria,
		Imagens:      []string{nome + ".png"},
		CriadoEm:     created,
		AtualizadoEm: created,
	}
}

// Run executes the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s menu.Store)
	}{
		{"insert assigns ids", testInsert},
		{"find all keeps insertion order", testFindAllOrder},
		{"find all on empty store", testFindAllEmpty},
		{"find where", testFindWhere},
		{"update applies present fields", testUpdate},
		{"update clears images", testUpdateImages},
		{"delete returns last state", testDelete},
		{"unknown ids", testUnknownID},
		{"returned items are copies", testCopies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func insert(t *testing.T, s menu.Store, it menu.Item) *menu.Item {
	t.Helper()
	got, err := s.Insert(context.Background(), it)
	require.NoError(t, err)
	require.NotNil(t, got)
	return got
}

func ids(items []menu.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func testInsert(t *testing.T, s menu.Store) {
	ctx := context.Background()

	a := insert(t, s, Item("Laço Rosa", "Laços"))
	b := insert(t, s, Item("Kit Festa", "Kit"))

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)

	got, err := s.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Laço Rosa", got.Nome)
	assert.Equal(t, "descricao de Laço Rosa", got.Descricao)
	assert.InDelta(t, 12.5, got.Preco, 1e-9)
	assert.Equal(t, "Laços", got.Categoria)
	assert.Equal(t, []string{"Laço Rosa.png"}, got.Imagens)
	assert.True(t, created.Equal(got.CriadoEm), "criadoEm = %v", got.CriadoEm)
	assert.True(t, created.Equal(got.AtualizadoEm), "atualizadoEm = %v", got.AtualizadoEm)
}

func testFindAllOrder(t *testing.T, s menu.Store) {
	want := []string{
		insert(t, s, Item("um", "A")).ID,
		insert(t, s, Item("dois", "B")).ID,
		insert(t, s, Item("tres", "A")).ID,
	}

	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, ids(all))
}

func testFindAllEmpty(t *testing.T, s menu.Store) {
	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func testFindWhere(t *testing.T, s menu.Store) {
	ctx := context.Background()

	kit := insert(t, s, Item("Kit Festa", "Kit"))
	bow := insert(t, s, Item("Laco Azul", "Lacos"))
	mini := insert(t, s, Item("Mini kit", "Kit Especial"))
	pct := insert(t, s, Item("Desconto 10%", "Promo_2025"))

	tests := []struct {
		name  string
		query menu.Query
		want  []string
	}{
		{"category case insensitive", menu.Query{Field: menu.FieldCategoria, Term: "kit"}, []string{kit.ID, mini.ID}},
		{"category substring", menu.Query{Field: menu.FieldCategoria, Term: "ACO"}, []string{bow.ID}},
		{"name substring", menu.Query{Field: menu.FieldNome, Term: "KIT"}, []string{kit.ID, mini.ID}},
		{"no match", menu.Query{Field: menu.FieldNome, Term: "bolo"}, []string{}},
		{"percent is literal", menu.Query{Field: menu.FieldNome, Term: "%"}, []string{pct.ID}},
		{"underscore is literal", menu.Query{Field: menu.FieldCategoria, Term: "_"}, []string{pct.ID}},
		{"dot is literal", menu.Query{Field: menu.FieldNome, Term: "."}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.FindWhere(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func testUpdate(t *testing.T, s menu.Store) {
	ctx := context.Background()
	orig := insert(t, s, Item("Kit Festa", "Kit"))

	p := menu.Patch{Nome: strPtr("Kit Festa Grande"), Preco: floatPtr(99.9)}
	got, err := s.UpdateByID(ctx, orig.ID, p, updated)
	require.NoError(t, err)

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, "Kit Festa Grande", got.Nome)
	assert.InDelta(t, 99.9, got.Preco, 1e-9)
	assert.Equal(t, orig.Descricao, got.Descricao)
	assert.Equal(t, orig.Categoria, got.Categoria)
	assert.Equal(t, orig.Imagens, got.Imagens)
	assert.True(t, created.Equal(got.CriadoEm))
	assert.True(t, updated.Equal(got.AtualizadoEm))

	stored, err := s.FindByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kit Festa Grande", stored.Nome)
	assert.True(t, updated.Equal(stored.AtualizadoEm))
}

func testUpdateImages(t *testing.T, s menu.Store) {
	ctx := context.Background()
	orig := insert(t, s, Item("Kit Festa", "Kit"))

	empty := []string{}
	got, err := s.UpdateByID(ctx, orig.ID, menu.Patch{Imagens: &empty}, updated)
	require.NoError(t, err)
	assert.NotNil(t, got.Imagens)
	assert.Empty(t, got.Imagens)

	stored, err := s.FindByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Imagens)
}

func testDelete(t *testing.T, s menu.Store) {
	ctx := context.Background()
	keep := insert(t, s, Item("Kit Festa", "Kit"))
	gone := insert(t, s, Item("Laco", "Lacos"))

	got, err := s.DeleteByID(ctx, gone.ID)
	require.NoError(t, err)
	assert.Equal(t, gone.ID, got.ID)
	assert.Equal(t, "Laco", got.Nome)

	_, err = s.FindByID(ctx, gone.ID)
	assert.ErrorIs(t, err, menu.ErrNotFound)

	_, err = s.DeleteByID(ctx, gone.ID)
	assert.ErrorIs(t, err, menu.ErrNotFound)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ID}, ids(all))
}

func testUnknownID(t *testing.T, s menu.Store) {
	ctx := context.Background()
	insert(t, s, Item("Kit Festa", "Kit"))

	for _, id := range []string{"", "nao-existe", "999999"} {
		_, err := s.FindByID(ctx, id)
		assert.ErrorIs(t, err, menu.ErrNotFound, "find %q", id)

		_, err = s.UpdateByID(ctx, id, menu.Patch{Nome: strPtr("x")}, updated)
		assert.ErrorIs(t, err, menu.ErrNotFound, "update %q", id)

		_, err = s.DeleteByID(ctx, id)
		assert.ErrorIs(t, err, menu.ErrNotFound, "delete %q", id)
	}
}

func testCopies(t *testing.T, s menu.Store) {
	ctx := context.Background()
	orig := insert(t, s, Item("Kit Festa", "Kit"))

	orig.Nome = "mudado"
	orig.Imagens[0] = "mudado.png"

	got, err := s.FindByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kit Festa", got.Nome)
	assert.Equal(t, []string{"Kit Festa.png"}, got.Imagens)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	all[0].Imagens[0] = "outra.png"

	again, err := s.FindByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kit Festa.png"}, again.Imagens)
}
