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
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/cardapio/menu-api/pkg/errors"
)

// CheckSeedIDs rejects seed lists in which an explicit id appears more than
// once. Empty ids are left for the store to assign.
func CheckSeedIDs(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			continue
		}
		if first, ok := seen[it.ID]; ok {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate seed id %q", it.ID),
				map[string]any{"id": it.ID, "index": i, "firstIndex": first})
		}
		seen[it.ID] = i
	}
	return nil
}

// DefaultCatalog returns the built-in seed catalog with ids "1" to "7" and
// no timestamps. Each call returns fresh copies.
func DefaultCatalog() []Item {
	return []Item{
		{
			ID:        "1",
			Nome:      "Kit tal mãe tal filha laço Paula",
			Descricao: "Laço Paula de fita esponja no bico de pato \n Dois tamanhos diferentes",
			Preco:     27.00,
			Categoria: "Kit",
			Imagens:   []string{"Talmae_Talfilha.png"},
		},
		{
			ID:        "2",
			Nome:      "Rosa no bico de pato (par)",
			Descricao: "Flor feita de fita gorgurão, aplique strass no bico de pato 5,5cm",
			Preco:     13.00,
			Categoria: "Laços",
			Imagens:   []string{"RosaNoBico.jpg"},
		},
		{
			ID:        "3",
			Nome:      "Laço Paula no cetim bordado",
			Descricao: "Laço feito com cetim grosso bordado no bico de pato",
			Preco:     15.00,
			Categoria: "Laços",
			Imagens:   []string{"PaulaBordado.jpg"},
		},
		{
			ID:        "4",
			Nome:      "Laço Nanda com brilho",
			Descricao: "Laço de fita gorgurão com detalhe em tule com glitter e aplique brilho diamante no bico de pato",
			Preco:     16.50,
			Categoria: "Laços",
			Imagens:   []string{},
		},
		{
			ID:        "5",
			Nome:      "Laço Paula",
			Descricao: "Laço feito em fita gorgurão no bico de pato",
			Preco:     12.00,
			Categoria: "Laços",
			Imagens:   []string{"PaulaNormal.jpg"},
		},
		{
			ID:        "6",
			Nome:      "Kit porta coque + laço",
			Descricao: "Kit contendo um porta coque e um laço combinando, cor sob encomenda",
			Preco:     20.00,
			Categoria: "Kit",
			Imagens:   []string{},
		},
		{
			ID:        "7",
			Nome:      "Laço franzido",
			Descricao: "Laço de 8cm com bico de pato",
			Preco:     12.00,
			Categoria: "Laços",
			Imagens:   []string{"Franzido.jpg"},
		},
	}
}

// TableHeader implements serializer.Tabular for a single item, shown as
// one field per row.
func (i Item) TableHeader() []string {
	return []string{"CAMPO", "VALOR"}
}

// TableRows implements serializer.Tabular.
func (i Item) TableRows() [][]string {
	rows := [][]string{
		{"id", i.ID},
		{"nome", i.Nome},
		{"descricao", i.Descricao},
		{"preco", strconv.FormatFloat(i.Preco, 'f', 2, 64)},
		{"categoria", i.Categoria},
		{"imagens", strings.Join(i.Imagens, ",")},
	}
	if !i.CriadoEm.IsZero() {
		rows = append(rows, []string{"criadoEm", i.CriadoEm.Format(time.RFC3339)})
	}
	if !i.AtualizadoEm.IsZero() {
		rows = append(rows, []string{"atualizadoEm", i.AtualizadoEm.Format(time.RFC3339)})
	}
	return rows
}

// Items is a list of menu items renderable as a table.
type Items []Item

// TableHeader implements serializer.Tabular.
func (l Items) TableHeader() []string {
	return []string{"ID", "NOME", "CATEGORIA", "PRECO", "IMAGENS"}
}

// TableRows implements serializer.Tabular.
func (l Items) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, it := range l {
		rows = append(rows, []string{
			it.ID,
			it.Nome,
			it.Categoria,
			strconv.FormatFloat(it.Preco, 'f', 2, 64),
			strings.Join(it.Imagens, ","),
		})
	}
	return rows
}

// Categorias is a list of category names renderable as a table.
type Categorias []string

// TableHeader implements serializer.Tabular.
func (c Categorias) TableHeader() []string {
	return []string{"CATEGORIA"}
}

// TableRows implements serializer.Tabular.
func (c Categorias) TableRows() [][]string {
	rows := make([][]string, 0, len(c))
	for _, name := range c {
		rows = append(rows, []string{name})
	}
	return rows
}
