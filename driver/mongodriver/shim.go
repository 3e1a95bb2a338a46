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

// Package mongodriver adapts the official MongoDB driver to the interfaces of
// the driver package.
package mongodriver

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/go-kivik/mongomock/driver"
)

// Wrap returns c as a driver.Client.
func Wrap(c *mongo.Client) driver.Client {
	return client{c}
}

type client struct {
	*mongo.Client
}

var _ driver.Client = client{}

// Connect pings the primary, and returns the client itself. The underlying
// client is connected already by mongo.Connect.
func (c client) Connect(ctx context.Context) (driver.Client, error) {
	if err := c.Client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return c, nil
}

func (c client) Database(name string, opts ...*options.DatabaseOptions) driver.Database {
	return database{c.Client.Database(name, opts...)}
}

func (c client) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (driver.ChangeStream, error) {
	return changeStream(c.Client.Watch(ctx, pipeline, opts...))
}

type database struct {
	*mongo.Database
}

var _ driver.Database = database{}

func (d database) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (driver.Cursor, error) {
	return cursor(d.Database.Aggregate(ctx, pipeline, opts...))
}

func (d database) Client() driver.Client {
	return client{d.Database.Client()}
}

func (d database) Collection(name string, opts ...*options.CollectionOptions) driver.Collection {
	return collection{d.Database.Collection(name, opts...)}
}

func (d database) ListCollections(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) (driver.Cursor, error) {
	return cursor(d.Database.ListCollections(ctx, filter, opts...))
}

func (d database) RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) driver.SingleResult {
	return d.Database.RunCommand(ctx, runCommand, opts...)
}

func (d database) RunCommandCursor(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) (driver.Cursor, error) {
	return cursor(d.Database.RunCommandCursor(ctx, runCommand, opts...))
}

func (d database) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (driver.ChangeStream, error) {
	return changeStream(d.Database.Watch(ctx, pipeline, opts...))
}

type collection struct {
	*mongo.Collection
}

var _ driver.Collection = collection{}

func (c collection) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (driver.Cursor, error) {
	return cursor(c.Collection.Aggregate(ctx, pipeline, opts...))
}

func (c collection) Database() driver.Database {
	return database{c.Collection.Database()}
}

func (c collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (driver.Cursor, error) {
	return cursor(c.Collection.Find(ctx, filter, opts...))
}

func (c collection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) driver.SingleResult {
	return c.Collection.FindOne(ctx, filter, opts...)
}

func (c collection) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) driver.SingleResult {
	return c.Collection.FindOneAndDelete(ctx, filter, opts...)
}

func (c collection) FindOneAndReplace(ctx context.Context, filter, replacement interface{}, opts ...*options.FindOneAndReplaceOptions) driver.SingleResult {
	return c.Collection.FindOneAndReplace(ctx, filter, replacement, opts...)
}

func (c collection) FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) driver.SingleResult {
	return c.Collection.FindOneAndUpdate(ctx, filter, update, opts...)
}

func (c collection) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (driver.ChangeStream, error) {
	return changeStream(c.Collection.Watch(ctx, pipeline, opts...))
}

// cursor keeps a nil *mongo.Cursor from becoming a non-nil driver.Cursor.
func cursor(c *mongo.Cursor, err error) (driver.Cursor, error) {
	if c == nil {
		return nil, err
	}
	return c, err
}

func changeStream(cs *mongo.ChangeStream, err error) (driver.ChangeStream, error) {
	if cs == nil {
		return nil, err
	}
	return cs, err
}
