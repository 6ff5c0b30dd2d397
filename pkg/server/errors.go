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

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/cardapio/menu-api/pkg/errors"
	"github.com/cardapio/menu-api/pkg/serializer"
	"github.com/google/uuid"
)

const (
	// MessageInternalError is the client-facing message for unexpected failures.
	MessageInternalError = "Erro interno do servidor"
	// MessageRouteNotFound is returned for unmatched routes.
	MessageRouteNotFound = "Rota não encontrada"
	// MessageMethodNotAllowed is returned when a system route gets an unsupported method.
	MessageMethodNotAllowed = "Método não permitido"
	// MessageRateLimited is returned when the request rate limit is exceeded.
	MessageRateLimited = "Limite de requisições excedido"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Code      string         `json:"code"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
	Path      string         `json:"path,omitempty"`
	Method    string         `json:"method,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeStorage, apperrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeTimeout,
		apperrors.ErrCodeUnavailable,
		apperrors.ErrCodeRateLimitExceeded,
		apperrors.ErrCodeStorage,
		apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with the keys of both maps, b winning on
// conflict, or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func newErrorResponse(r *http.Request, code apperrors.ErrorCode, message string,
	retryable bool, details map[string]any) ErrorResponse {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      string(code),
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
		Details:   details,
	}
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	serializer.RespondJSON(w, statusCode, newErrorResponse(r, code, message, retryable, details))
}

// WriteErrorFromErr writes err as a structured error response. Structured
// errors keep their code, message and context; anything else becomes a 500
// with fallbackMessage. The cause text is included outside production.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	code := apperrors.ErrCodeInternal
	message := fallbackMessage
	var details map[string]any
	var cause error = err

	var se *apperrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		message = se.Message
		details = se.Context
		cause = se.Cause
	}

	status := HTTPStatusFromCode(code)
	resp := newErrorResponse(r, code, message, retryableFromCode(code), mergeDetails(details, extraDetails))
	if cause != nil && errorDetailAllowed(r.Context()) {
		resp.Error = cause.Error()
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", resp.RequestID,
			"method", r.Method,
			"path", r.URL.Path,
			"code", resp.Code,
			"error", err,
		)
	}

	serializer.RespondJSON(w, status, resp)
}

// writeRouteNotFound answers unmatched routes.
func writeRouteNotFound(w http.ResponseWriter, r *http.Request) {
	resp := newErrorResponse(r, apperrors.ErrCodeNotFound, MessageRouteNotFound, false, nil)
	resp.Path = r.URL.Path
	resp.Method = r.Method
	serializer.RespondJSON(w, http.StatusNotFound, resp)
}

// writeMethodNotAllowed answers a GET-only system route called with
// another method.
func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		MessageMethodNotAllowed, false, map[string]any{"method": r.Method})
}
