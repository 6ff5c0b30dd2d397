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
	"strings"

	"golang.org/x/text/cases"
)

// Field is a searchable text attribute of an Item.
type Field string

const (
	FieldNome      Field = "nome"
	FieldCategoria Field = "categoria"
)

// Query is a case-insensitive substring predicate on one field.
type Query struct {
	Field Field
	Term  string
}

// Matches reports whether it satisfies the query. Case is compared with
// Unicode simple case folding, so "laço" matches "LAÇO".
func (q Query) Matches(it Item) bool {
	var value string
	switch q.Field {
	case FieldNome:
		value = it.Nome
	case FieldCategoria:
		value = it.Categoria
	default:
		return false
	}
	return strings.Contains(Fold(value), Fold(q.Term))
}

// Fold returns the case-folded form of s.
func Fold(s string) string {
	// Casers carry state and are not safe for concurrent use.
	return cases.Fold().String(s)
}

// Filter returns the items matching q, preserving order.
func Filter(items []Item, q Query) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if q.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}
