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
)

// Collection is a fake collection handle. Each method delegates to the stub
// of the same name; options passed to a method are recorded as trailing
// arguments.
type Collection struct {
	*Handle
}

var _ driver.Collection = &Collection{}

// NewCollection returns a fake collection handle configured from b.
func NewCollection(b Behaviors) *Collection {
	return &Collection{Handle: Shape(CollectionType, b)}
}

func (c *Collection) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (driver.Cursor, error) {
	r := c.invoke(ctx, "Aggregate", withOptions([]interface{}{pipeline}, opts)...)
	return get[driver.Cursor](r, 0), r.error()
}

func (c *Collection) BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
	r := c.invoke(ctx, "BulkWrite", withOptions([]interface{}{models}, opts)...)
	return get[*mongo.BulkWriteResult](r, 0), r.error()
}

func (c *Collection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	r := c.invoke(ctx, "CountDocuments", withOptions([]interface{}{filter}, opts)...)
	return r.count(0), r.error()
}

func (c *Collection) Database() driver.Database {
	r := c.invoke(context.Background(), "Database")
	return get[driver.Database](r, 0)
}

func (c *Collection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	r := c.invoke(ctx, "DeleteMany", withOptions([]interface{}{filter}, opts)...)
	return get[*mongo.DeleteResult](r, 0), r.error()
}

func (c *Collection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	r := c.invoke(ctx, "DeleteOne", withOptions([]interface{}{filter}, opts)...)
	return get[*mongo.DeleteResult](r, 0), r.error()
}

func (c *Collection) Distinct(ctx context.Context, fieldName string, filter interface{}, opts ...*options.DistinctOptions) ([]interface{}, error) {
	r := c.invoke(ctx, "Distinct", withOptions([]interface{}{fieldName, filter}, opts)...)
	return get[[]interface{}](r, 0), r.error()
}

func (c *Collection) Drop(ctx context.Context) error {
	return c.invoke(ctx, "Drop").error()
}

func (c *Collection) EstimatedDocumentCount(ctx context.Context, opts ...*options.EstimatedDocumentCountOptions) (int64, error) {
	r := c.invoke(ctx, "EstimatedDocumentCount", withOptions(nil, opts)...)
	return r.count(0), r.error()
}

func (c *Collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (driver.Cursor, error) {
	r := c.invoke(ctx, "Find", withOptions([]interface{}{filter}, opts)...)
	return get[driver.Cursor](r, 0), r.error()
}

func (c *Collection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) driver.SingleResult {
	r := c.invoke(ctx, "FindOne", withOptions([]interface{}{filter}, opts)...)
	return singleResult(r)
}

func (c *Collection) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) driver.SingleResult {
	r := c.invoke(ctx, "FindOneAndDelete", withOptions([]interface{}{filter}, opts)...)
	return singleResult(r)
}

func (c *Collection) FindOneAndReplace(ctx context.Context, filter, replacement interface{}, opts ...*options.FindOneAndReplaceOptions) driver.SingleResult {
	r := c.invoke(ctx, "FindOneAndReplace", withOptions([]interface{}{filter, replacement}, opts)...)
	return singleResult(r)
}

func (c *Collection) FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) driver.SingleResult {
	r := c.invoke(ctx, "FindOneAndUpdate", withOptions([]interface{}{filter, update}, opts)...)
	return singleResult(r)
}

func (c *Collection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	r := c.invoke(ctx, "InsertMany", withOptions([]interface{}{documents}, opts)...)
	return get[*mongo.InsertManyResult](r, 0), r.error()
}

func (c *Collection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	r := c.invoke(ctx, "InsertOne", withOptions([]interface{}{document}, opts)...)
	return get[*mongo.InsertOneResult](r, 0), r.error()
}

func (c *Collection) Name() string {
	r := c.invoke(context.Background(), "Name")
	return get[string](r, 0)
}

func (c *Collection) ReplaceOne(ctx context.Context, filter, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	r := c.invoke(ctx, "ReplaceOne", withOptions([]interface{}{filter, replacement}, opts)...)
	return get[*mongo.UpdateResult](r, 0), r.error()
}

func (c *Collection) UpdateByID(ctx context.Context, id, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	r := c.invoke(ctx, "UpdateByID", withOptions([]interface{}{id, update}, opts)...)
	return get[*mongo.UpdateResult](r, 0), r.error()
}

func (c *Collection) UpdateMany(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	r := c.invoke(ctx, "UpdateMany", withOptions([]interface{}{filter, update}, opts)...)
	return get[*mongo.UpdateResult](r, 0), r.error()
}

func (c *Collection) UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	r := c.invoke(ctx, "UpdateOne", withOptions([]interface{}{filter, update}, opts)...)
	return get[*mongo.UpdateResult](r, 0), r.error()
}

func (c *Collection) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (driver.ChangeStream, error) {
	r := c.invoke(ctx, "Watch", withOptions([]interface{}{pipeline}, opts)...)
	return get[driver.ChangeStream](r, 0), r.error()
}
