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

// Package serializer moves menu data between Go values and the outside
// world: JSON and YAML documents, terminal tables and HTTP.
//
// Writers render CLI output:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, "")
//	defer w.Close()
//	err := w.Serialize(ctx, menu.Items(items))
//
// Table output needs a value implementing Tabular; JSON and YAML take any
// value. FromFile loads seed files and CLI payloads from a path or an
// http(s) URL. RespondJSON writes API responses, and HTTPClient is the
// transport behind pkg/client.
package serializer

import "slices"

// Format is an encoding for output or input documents.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// SupportedFormats lists the valid --format values.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// IsUnknown reports whether f is not one of SupportedFormats.
func (f Format) IsUnknown() bool {
	return !slices.Contains(SupportedFormats(), string(f))
}

// Tabular is implemented by values that render as a column table: a
// header row plus one row per record.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}
