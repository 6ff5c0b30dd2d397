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

// Package postgres is a Store on a PostgreSQL table accessed through a
// pgx connection pool. Ids are BIGSERIAL values rendered as decimal strings.
//
// Name and category searches run as ILIKE, so case folding follows the
// database's LC_CTYPE. Non-ASCII letters such as "Ç" only match "ç" under a
// UTF-8 locale (e.g. en_US.UTF-8 or pt_BR.UTF-8); a C or POSIX database
// folds ASCII only. Open logs a warning when it detects such a locale.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
	id            BIGSERIAL PRIMARY KEY,
	nome          TEXT NOT NULL,
	descricao     TEXT NOT NULL,
	preco         DOUBLE PRECISION NOT NULL CHECK (preco >= 0),
	categoria     TEXT NOT NULL,
	imagens       TEXT[] NOT NULL DEFAULT '{}',
	criado_em     TIMESTAMPTZ NOT NULL,
	atualizado_em TIMESTAMPTZ NOT NULL
)`

const columns = `id, nome, descricao, preco, categoria, imagens, criado_em, atualizado_em`

// searchColumns maps query fields to columns; nothing else reaches SQL text.
var searchColumns = map[menu.Field]string{
	menu.FieldNome:      "nome",
	menu.FieldCategoria: "categoria",
}

// Store persists menu items in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

var _ menu.Store = (*Store)(nil)

// Open connects to databaseURL, verifies connectivity and creates the
// table if it does not exist.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create menu_items table: %w", err)
	}

	var ctype string
	if err := pool.QueryRow(ctx, `SHOW lc_ctype`).Scan(&ctype); err != nil {
		slog.Warn("cannot read postgres lc_ctype", "error", err)
	} else if asciiOnlyLocale(ctype) {
		slog.Warn("postgres locale folds ASCII only, accented searches are case-sensitive",
			"lc_ctype", ctype)
	}
	return s, nil
}

// asciiOnlyLocale reports whether ILIKE under ctype leaves non-ASCII
// letters unfolded.
func asciiOnlyLocale(ctype string) bool {
	switch strings.ToUpper(strings.TrimSpace(ctype)) {
	case "C", "POSIX":
		return true
	default:
		return false
	}
}

// Insert implements menu.Store.
func (s *Store) Insert(ctx context.Context, it menu.Item) (*menu.Item, error) {
	rec := it.Clone()

	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO menu_items (nome, descricao, preco, categoria, imagens, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		rec.Nome, rec.Descricao, rec.Preco, rec.Categoria, rec.Imagens, rec.CriadoEm, rec.AtualizadoEm,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	rec.ID = strconv.FormatInt(id, 10)
	return &rec, nil
}

// FindByID implements menu.Store.
func (s *Store) FindByID(ctx context.Context, id string) (*menu.Item, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, menu.ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `SELECT `+columns+` FROM menu_items WHERE id = $1`, n)
	return scanOne(row)
}

// FindAll implements menu.Store.
func (s *Store) FindAll(ctx context.Context) ([]menu.Item, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+columns+` FROM menu_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return scanAll(rows)
}

// FindWhere implements menu.Store.
func (s *Store) FindWhere(ctx context.Context, q menu.Query) ([]menu.Item, error) {
	col, ok := searchColumns[q.Field]
	if !ok {
		return nil, fmt.Errorf("unsupported query field %q", q.Field)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+columns+` FROM menu_items WHERE `+col+` ILIKE $1 ESCAPE '\' ORDER BY id`,
		likePattern(q.Term),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by %s: %w", col, err)
	}
	return scanAll(rows)
}

// UpdateByID implements menu.Store.
func (s *Store) UpdateByID(ctx context.Context, id string, p menu.Patch, at time.Time) (*menu.Item, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, menu.ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE menu_items SET
			nome          = COALESCE($2, nome),
			descricao     = COALESCE($3, descricao),
			preco         = COALESCE($4, preco),
			categoria     = COALESCE($5, categoria),
			imagens       = COALESCE($6::TEXT[], imagens),
			atualizado_em = $7
		WHERE id = $1
		RETURNING `+columns,
		n, p.Nome, p.Descricao, p.Preco, p.Categoria, p.Imagens, at,
	)
	return scanOne(row)
}

// DeleteByID implements menu.Store.
func (s *Store) DeleteByID(ctx context.Context, id string) (*menu.Item, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, menu.ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `DELETE FROM menu_items WHERE id = $1 RETURNING `+columns, n)
	return scanOne(row)
}

// Ping implements menu.Pinger.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close implements menu.Store.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// likePattern escapes LIKE metacharacters and wraps term for a substring match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func scanOne(row pgx.Row) (*menu.Item, error) {
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read item: %w", err)
	}
	return it, nil
}

func scanAll(rows pgx.Rows) ([]menu.Item, error) {
	defer rows.Close()

	items := make([]menu.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*menu.Item, error) {
	var (
		id int64
		it menu.Item
	)
	if err := row.Scan(&id, &it.Nome, &it.Descricao, &it.Preco, &it.Categoria,
		&it.Imagens, &it.CriadoEm, &it.AtualizadoEm); err != nil {
		return nil, err
	}
	it.ID = strconv.FormatInt(id, 10)
	it.CriadoEm = it.CriadoEm.UTC()
	it.AtualizadoEm = it.AtualizadoEm.UTC()
	if it.Imagens == nil {
		it.Imagens = []string{}
	}
	return &it, nil
}
