// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package fixture builds fake clients from YAML descriptions of databases,
// collections and documents.
//
// A fixture file looks like this:
//
//	databases:
//	  shop:
//	    collections:
//	      orders:
//	        documents:
//	          - {_id: 1, status: open}
//	          - {_id: 2, status: closed}
//
// Every collection of the resulting client answers Find and Aggregate with a
// fresh cursor over its documents, FindOne with the first document, the count
// methods with the number of documents, and Watch with a stream of them.
package fixture

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/yaml.v3"

	"github.com/go-kivik/mongomock"
	"github.com/go-kivik/mongomock/stub"
)

// File is a decoded fixture.
type File struct {
	Databases map[string]Database `yaml:"databases" validate:"required,dive,keys,required,excludesall=/\\. $,endkeys"`
}

// Database describes the collections of one database.
type Database struct {
	Collections map[string]Collection `yaml:"collections" validate:"dive,keys,required,excludesall=$,endkeys"`
}

// Collection describes the documents of one collection.
type Collection struct {
	Documents []map[string]interface{} `yaml:"documents" validate:"dive,required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads and validates a fixture from r.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "fixture: decode")
	}
	if err := f.validate(); err != nil {
		return nil, errors.Wrap(err, "fixture: invalid")
	}
	return f, nil
}

// validate checks f and every database and collection in it. The validator
// does not descend into map values on its own.
func (f *File) validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	for _, dbName := range sortedKeys(f.Databases) {
		db := f.Databases[dbName]
		if err := validate.Struct(db); err != nil {
			return errors.Wrapf(err, "database %s", dbName)
		}
		for _, collName := range sortedKeys(db.Collections) {
			if err := validate.Struct(db.Collections[collName]); err != nil {
				return errors.Wrapf(err, "collection %s.%s", dbName, collName)
			}
		}
	}
	return nil
}

// Load decodes a fixture from r, and returns a client serving it.
func Load(r io.Reader) (*mongomock.Client, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return f.Client(), nil
}

// LoadFile is like Load, but reads the fixture from the file at path.
func LoadFile(path string) (*mongomock.Client, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "fixture")
	}
	defer file.Close() // nolint: errcheck
	c, err := Load(file)
	return c, errors.Wrap(err, path)
}

// Client returns a fake client serving the fixture. ListDatabaseNames
// returns the database names, sorted.
func (f *File) Client() *mongomock.Client {
	dbs := make(map[string]*mongomock.Database, len(f.Databases))
	for name, db := range f.Databases {
		dbs[name] = db.database(name)
	}
	c := mongomock.NewClient(dbs, mongomock.Behaviors{
		"ListDatabaseNames": sortedKeys(f.Databases),
	})
	for _, db := range dbs {
		db.Stub("Client").Returns(c)
	}
	return c
}

func (d Database) database(name string) *mongomock.Database {
	colls := make(map[string]*mongomock.Collection, len(d.Collections))
	for collName, coll := range d.Collections {
		colls[collName] = coll.collection(collName)
	}
	db := mongomock.NewDatabase(colls, mongomock.Behaviors{
		"Name":                name,
		"ListCollectionNames": sortedKeys(d.Collections),
	})
	for _, coll := range colls {
		coll.Stub("Database").Returns(db)
	}
	return db
}

func (c Collection) collection(name string) *mongomock.Collection {
	docs := make([]interface{}, len(c.Documents))
	for i, doc := range c.Documents {
		docs[i] = bson.M(doc)
	}
	cursor := func() *stub.Stub {
		return stub.New().Executes(func(context.Context, ...interface{}) ([]interface{}, error) {
			return []interface{}{mongomock.NewCursor(docs)}, nil
		})
	}
	findOne := stub.New().Executes(func(context.Context, ...interface{}) ([]interface{}, error) {
		if len(docs) == 0 {
			return []interface{}{mongomock.SingleResultError(mongo.ErrNoDocuments)}, nil
		}
		return []interface{}{mongomock.NewSingleResult(docs[0])}, nil
	})
	watch := stub.New().Executes(func(context.Context, ...interface{}) ([]interface{}, error) {
		return []interface{}{mongomock.NewStream(docs)}, nil
	})
	return mongomock.NewCollection(mongomock.Behaviors{
		"Name":                   name,
		"Find":                   cursor(),
		"Aggregate":              cursor(),
		"FindOne":                findOne,
		"CountDocuments":         int64(len(docs)),
		"EstimatedDocumentCount": int64(len(docs)),
		"Watch":                  watch,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
