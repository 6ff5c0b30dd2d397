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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cardapio/menu-api/pkg/defaults"
)

// FormatFromPath returns FormatYAML for .yaml and .yml files (or URL paths)
// and FormatJSON for everything else.
func FormatFromPath(source string) Format {
	p := source
	if isRemote(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode unmarshals one JSON or YAML document from r into v.
func Decode(format Format, r io.Reader, v any) error {
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("format %q cannot be decoded", format)
	}
	return nil
}

// ReadSource returns the contents of a local file or an http(s) URL.
func ReadSource(ctx context.Context, source string, opts ...HTTPClientOption) ([]byte, error) {
	if isRemote(source) {
		return NewHTTPClient(opts...).Read(ctx, source)
	}
	return os.ReadFile(source)
}

// FromFile loads the document at path, a file or an http(s) URL, into a
// new T. The format follows the extension.
//
//	items, err := serializer.FromFile[[]menu.Item]("seed.yaml")
func FromFile[T any](path string) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.HTTPClientTimeout)
	defer cancel()

	data, err := ReadSource(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var v T
	if err := Decode(FormatFromPath(path), bytes.NewReader(data), &v); err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}

	slog.Debug("loaded document", "path", path, "bytes", len(data))
	return &v, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
