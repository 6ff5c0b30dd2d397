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
	"math"
	"slices"
	"strings"
	"time"

	apperrors "github.com/cardapio/menu-api/pkg/errors"
)

// Item is one entry of the menu. JSON field names are the wire contract.
type Item struct {
	ID           string    `json:"id" yaml:"id"`
	Nome         string    `json:"nome" yaml:"nome"`
	Descricao    string    `json:"descricao" yaml:"descricao"`
	Preco        float64   `json:"preco" yaml:"preco"`
	Categoria    string    `json:"categoria" yaml:"categoria"`
	Imagens      []string  `json:"imagens" yaml:"imagens"`
	CriadoEm     time.Time `json:"criadoEm,omitzero" yaml:"criadoEm,omitempty"`
	AtualizadoEm time.Time `json:"atualizadoEm,omitzero" yaml:"atualizadoEm,omitempty"`
}

// Clone returns a deep copy of the item with a non-nil image list.
func (i Item) Clone() Item {
	out := i
	if i.Imagens == nil {
		out.Imagens = []string{}
	} else {
		out.Imagens = slices.Clone(i.Imagens)
	}
	return out
}

// Validate applies the create rules to a complete item, such as one read
// from a seed file.
func (i Item) Validate() error {
	return Input{
		Nome:      &i.Nome,
		Descricao: &i.Descricao,
		Preco:     &i.Preco,
		Categoria: &i.Categoria,
		Imagens:   i.Imagens,
	}.Validate()
}

// Input is the payload accepted by Create. Pointer fields distinguish a
// missing value from an empty one.
type Input struct {
	Nome      *string  `json:"nome,omitempty" yaml:"nome,omitempty"`
	Descricao *string  `json:"descricao,omitempty" yaml:"descricao,omitempty"`
	Preco     *float64 `json:"preco,omitempty" yaml:"preco,omitempty"`
	Categoria *string  `json:"categoria,omitempty" yaml:"categoria,omitempty"`
	Imagens   []string `json:"imagens,omitempty" yaml:"imagens,omitempty"`
}

// Patch is a partial update. Only non-nil fields are applied.
type Patch struct {
	Nome      *string   `json:"nome,omitempty" yaml:"nome,omitempty"`
	Descricao *string   `json:"descricao,omitempty" yaml:"descricao,omitempty"`
	Preco     *float64  `json:"preco,omitempty" yaml:"preco,omitempty"`
	Categoria *string   `json:"categoria,omitempty" yaml:"categoria,omitempty"`
	Imagens   *[]string `json:"imagens,omitempty" yaml:"imagens,omitempty"`
}

// Validation failure reasons.
const (
	ReasonRequired  = "required"
	ReasonBlank     = "blank"
	ReasonNegative  = "negative"
	ReasonNotFinite = "not_finite"
)

// FieldError names one invalid field.
type FieldError struct {
	Field  string `json:"field" yaml:"field"`
	Reason string `json:"reason" yaml:"reason"`
}

// Validate reports every missing or invalid field of a create payload.
// It returns nil or an INVALID_REQUEST StructuredError.
func (in Input) Validate() error {
	var fields []FieldError
	fields = checkText(fields, "nome", in.Nome, true)
	fields = checkText(fields, "descricao", in.Descricao, true)
	fields = checkPrice(fields, in.Preco, true)
	fields = checkText(fields, "categoria", in.Categoria, true)
	return validationError(fields)
}

// Item builds the record to insert from a validated input. Text fields are
// trimmed and a missing image list becomes empty.
func (in Input) Item() Item {
	it := Item{
		Nome:      strings.TrimSpace(deref(in.Nome)),
		Descricao: strings.TrimSpace(deref(in.Descricao)),
		Categoria: strings.TrimSpace(deref(in.Categoria)),
		Imagens:   slices.Clone(in.Imagens),
	}
	if in.Preco != nil {
		it.Preco = *in.Preco
	}
	if it.Imagens == nil {
		it.Imagens = []string{}
	}
	return it
}

// Validate applies the create rules to the fields present in the patch.
func (p Patch) Validate() error {
	var fields []FieldError
	fields = checkText(fields, "nome", p.Nome, false)
	fields = checkText(fields, "descricao", p.Descricao, false)
	fields = checkPrice(fields, p.Preco, false)
	fields = checkText(fields, "categoria", p.Categoria, false)
	return validationError(fields)
}

// IsEmpty reports whether the patch changes no field.
func (p Patch) IsEmpty() bool {
	return p.Nome == nil && p.Descricao == nil && p.Preco == nil &&
		p.Categoria == nil && p.Imagens == nil
}

// Normalized returns a copy with trimmed text and an owned image slice.
func (p Patch) Normalized() Patch {
	var out Patch
	out.Nome = trimmed(p.Nome)
	out.Descricao = trimmed(p.Descricao)
	out.Categoria = trimmed(p.Categoria)
	if p.Imagens != nil {
		imgs := slices.Clone(*p.Imagens)
		if imgs == nil {
			imgs = []string{}
		}
		out.Imagens = &imgs
	}
	if p.Preco != nil {
		v := *p.Preco
		out.Preco = &v
	}
	return out
}

// Apply sets the present fields of p on it and stamps the update time.
func (p Patch) Apply(it *Item, at time.Time) {
	if p.Nome != nil {
		it.Nome = *p.Nome
	}
	if p.Descricao != nil {
		it.Descricao = *p.Descricao
	}
	if p.Preco != nil {
		it.Preco = *p.Preco
	}
	if p.Categoria != nil {
		it.Categoria = *p.Categoria
	}
	if p.Imagens != nil {
		it.Imagens = slices.Clone(*p.Imagens)
	}
	it.AtualizadoEm = at
}

func checkText(fields []FieldError, name string, v *string, required bool) []FieldError {
	switch {
	case v == nil:
		if required {
			fields = append(fields, FieldError{Field: name, Reason: ReasonRequired})
		}
	case strings.TrimSpace(*v) == "":
		fields = append(fields, FieldError{Field: name, Reason: ReasonBlank})
	}
	return fields
}

func checkPrice(fields []FieldError, v *float64, required bool) []FieldError {
	switch {
	case v == nil:
		if required {
			fields = append(fields, FieldError{Field: "preco", Reason: ReasonRequired})
		}
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		fields = append(fields, FieldError{Field: "preco", Reason: ReasonNotFinite})
	case *v < 0:
		fields = append(fields, FieldError{Field: "preco", Reason: ReasonNegative})
	}
	return fields
}

func validationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, MessageInvalidItem,
		map[string]any{"fields": fields})
}

// FieldErrors extracts the field list from a validation error.
func FieldErrors(err error) []FieldError {
	var se *apperrors.StructuredError
	if !asStructured(err, &se) || se.Context == nil {
		return nil
	}
	fields, _ := se.Context["fields"].([]FieldError)
	return fields
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
