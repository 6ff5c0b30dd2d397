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
	"errors"

	apperrors "github.com/cardapio/menu-api/pkg/errors"
)

// Client-facing messages.
const (
	MessageCreated          = "Item criado com sucesso"
	MessageUpdated          = "Item atualizado com sucesso"
	MessageDeleted          = "Item deletado com sucesso"
	MessageNotFound         = "Item não encontrado"
	MessageCategoryEmpty    = "Nenhum item encontrado para esta categoria"
	MessageSearchEmpty      = "Nenhum item encontrado com este nome"
	MessageInvalidItem      = "Dados do item inválidos"
	MessageInvalidBody      = "Corpo da requisição inválido"
	MessageStorageFailure   = "Erro interno do servidor"
	MessageStorageTimeout   = "Tempo limite excedido ao acessar o cardápio"
	MessageInvalidSearch    = "Termo de busca inválido"
	MessageInvalidCategoria = "Categoria inválida"
)

func notFoundError(id string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeNotFound, MessageNotFound,
		map[string]any{"id": id})
}

// storageError classifies a backend failure. Deadline overruns are
// reported as TIMEOUT (504) so clients can tell them from hard failures.
func storageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.WrapWithContext(apperrors.ErrCodeTimeout, MessageStorageTimeout, err,
			map[string]any{"operation": op})
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeStorage, MessageStorageFailure, err,
		map[string]any{"operation": op})
}

func blankTermError(message, field string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, message,
		map[string]any{"fields": []FieldError{{Field: field, Reason: ReasonBlank}}})
}

func asStructured(err error, target **apperrors.StructuredError) bool {
	return errors.As(err, target)
}

// IsNotFound reports whether err is a missing-item failure.
func IsNotFound(err error) bool {
	return apperrors.IsCode(err, apperrors.ErrCodeNotFound)
}

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	return apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest)
}

// IsStorage reports whether err is a backend failure, including timeouts.
func IsStorage(err error) bool {
	return apperrors.IsCode(err, apperrors.ErrCodeStorage) ||
		apperrors.IsCode(err, apperrors.ErrCodeTimeout)
}
