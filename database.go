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

package mongomock

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/go-kivik/mongomock/driver"
	"github.com/go-kivik/mongomock/stub"
)

// Database is a fake database handle.
type Database struct {
	*Handle
	def   *Collection
	named map[string]*Collection
}

var _ driver.Database = &Database{}

// NewDatabase returns a fake database handle configured from b. Its
// Collection method returns the matching entry of collections for a
// registered name, and one shared default collection for any other name. A
// Collection entry in b is overridden.
func NewDatabase(collections map[string]*Collection, b Behaviors) *Database {
	d := &Database{
		Handle: Shape(DatabaseType, b),
		def:    NewCollection(nil),
		named:  make(map[string]*Collection, len(collections)),
	}
	getter := stub.New().Returns(d.def)
	for name, c := range collections {
		if c == nil {
			continue
		}
		d.named[name] = c
		getter.WithArgs(name).Returns(c)
	}
	d.attach("Collection", getter)
	return d
}

// Default returns the collection handed out for unregistered names.
func (d *Database) Default() *Collection {
	return d.def
}

func (d *Database) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (driver.Cursor, error) {
	r := d.invoke(ctx, "Aggregate", withOptions([]interface{}{pipeline}, opts)...)
	return get[driver.Cursor](r, 0), r.error()
}

func (d *Database) Client() driver.Client {
	r := d.invoke(context.Background(), "Client")
	return get[driver.Client](r, 0)
}

// Collection returns the collection registered under name. Options are not
// passed to the stub, so overrides match on the name alone.
func (d *Database) Collection(name string, _ ...*options.CollectionOptions) driver.Collection {
	r := d.invoke(context.Background(), "Collection", name)
	return get[driver.Collection](r, 0)
}

func (d *Database) CreateCollection(ctx context.Context, name string, opts ...*options.CreateCollectionOptions) error {
	return d.invoke(ctx, "CreateCollection", withOptions([]interface{}{name}, opts)...).error()
}

func (d *Database) CreateView(ctx context.Context, viewName, viewOn string, pipeline interface{}, opts ...*options.CreateViewOptions) error {
	return d.invoke(ctx, "CreateView", withOptions([]interface{}{viewName, viewOn, pipeline}, opts)...).error()
}

func (d *Database) Drop(ctx context.Context) error {
	return d.invoke(ctx, "Drop").error()
}

func (d *Database) ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error) {
	r := d.invoke(ctx, "ListCollectionNames", withOptions([]interface{}{filter}, opts)...)
	return get[[]string](r, 0), r.error()
}

func (d *Database) ListCollectionSpecifications(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]*mongo.CollectionSpecification, error) {
	r := d.invoke(ctx, "ListCollectionSpecifications", withOptions([]interface{}{filter}, opts)...)
	return get[[]*mongo.CollectionSpecification](r, 0), r.error()
}

func (d *Database) ListCollections(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) (driver.Cursor, error) {
	r := d.invoke(ctx, "ListCollections", withOptions([]interface{}{filter}, opts)...)
	return get[driver.Cursor](r, 0), r.error()
}

func (d *Database) Name() string {
	r := d.invoke(context.Background(), "Name")
	return get[string](r, 0)
}

func (d *Database) RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) driver.SingleResult {
	r := d.invoke(ctx, "RunCommand", withOptions([]interface{}{runCommand}, opts)...)
	return singleResult(r)
}

func (d *Database) RunCommandCursor(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) (driver.Cursor, error) {
	r := d.invoke(ctx, "RunCommandCursor", withOptions([]interface{}{runCommand}, opts)...)
	return get[driver.Cursor](r, 0), r.error()
}

func (d *Database) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (driver.ChangeStream, error) {
	r := d.invoke(ctx, "Watch", withOptions([]interface{}{pipeline}, opts)...)
	return get[driver.ChangeStream](r, 0), r.error()
}
