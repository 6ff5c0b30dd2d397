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

// Package mongo is a Store on a MongoDB collection. Ids are ObjectID hex
// strings; documents use the same field names as the JSON contract.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/cardapio/menu-api/pkg/defaults"
	"github.com/cardapio/menu-api/pkg/menu"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the collection holding menu items.
const CollectionName = "menu"

var byInsertion = bson.D{{Key: "_id", Value: 1}}

type document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nome         string             `bson:"nome"`
	Descricao    string             `bson:"descricao"`
	Preco        float64            `bson:"preco"`
	Categoria    string             `bson:"categoria"`
	Imagens      []string           `bson:"imagens"`
	CriadoEm     time.Time          `bson:"criadoEm"`
	AtualizadoEm time.Time          `bson:"atualizadoEm"`
}

func fromItem(it menu.Item) document {
	return document{
		Nome:         it.Nome,
		Descricao:    it.Descricao,
		Preco:        it.Preco,
		Categoria:    it.Categoria,
		Imagens:      it.Imagens,
		CriadoEm:     it.CriadoEm,
		AtualizadoEm: it.AtualizadoEm,
	}
}

func (d document) item() *menu.Item {
	it := menu.Item{
		ID:           d.ID.Hex(),
		Nome:         d.Nome,
		Descricao:    d.Descricao,
		Preco:        d.Preco,
		Categoria:    d.Categoria,
		Imagens:      d.Imagens,
		CriadoEm:     d.CriadoEm.UTC(),
		AtualizadoEm: d.AtualizadoEm.UTC(),
	}
	it = it.Clone()
	return &it
}

// Store persists menu items in MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ menu.Store = (*Store)(nil)

// Open connects to uri and verifies the primary is reachable.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(CollectionName),
	}, nil
}

// Insert implements menu.Store.
func (s *Store) Insert(ctx context.Context, it menu.Item) (*menu.Item, error) {
	doc := fromItem(it.Clone())
	doc.ID = primitive.NewObjectID()
	// BSON dates hold milliseconds.
	doc.CriadoEm = doc.CriadoEm.Truncate(time.Millisecond)
	doc.AtualizadoEm = doc.AtualizadoEm.Truncate(time.Millisecond)

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}
	return doc.item(), nil
}

// FindByID implements menu.Store.
func (s *Store) FindByID(ctx context.Context, id string) (*menu.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, menu.ErrNotFound
	}
	return decodeOne(s.coll.FindOne(ctx, bson.M{"_id": oid}))
}

// FindAll implements menu.Store.
func (s *Store) FindAll(ctx context.Context) ([]menu.Item, error) {
	return s.find(ctx, bson.M{})
}

// FindWhere implements menu.Store.
func (s *Store) FindWhere(ctx context.Context, q menu.Query) ([]menu.Item, error) {
	switch q.Field {
	case menu.FieldNome, menu.FieldCategoria:
	default:
		return nil, fmt.Errorf("unsupported query field %q", q.Field)
	}

	return s.find(ctx, bson.M{
		string(q.Field): primitive.Regex{Pattern: regexp.QuoteMeta(q.Term), Options: "i"},
	})
}

// UpdateByID implements menu.Store.
func (s *Store) UpdateByID(ctx context.Context, id string, p menu.Patch, at time.Time) (*menu.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, menu.ErrNotFound
	}

	set := bson.M{"atualizadoEm": at.Truncate(time.Millisecond)}
	if p.Nome != nil {
		set["nome"] = *p.Nome
	}
	if p.Descricao != nil {
		set["descricao"] = *p.Descricao
	}
	if p.Preco != nil {
		set["preco"] = *p.Preco
	}
	if p.Categoria != nil {
		set["categoria"] = *p.Categoria
	}
	if p.Imagens != nil {
		imgs := *p.Imagens
		if imgs == nil {
			imgs = []string{}
		}
		set["imagens"] = imgs
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return decodeOne(s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts))
}

// DeleteByID implements menu.Store.
func (s *Store) DeleteByID(ctx context.Context, id string) (*menu.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, menu.ErrNotFound
	}
	return decodeOne(s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}))
}

// Ping implements menu.Pinger.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close implements menu.Store.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.StoreCloseTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]menu.Item, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(byInsertion))
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]menu.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, *d.item())
	}
	return items, nil
}

func decodeOne(res *mongo.SingleResult) (*menu.Item, error) {
	var doc document
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, menu.ErrNotFound
		}
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return doc.item(), nil
}
