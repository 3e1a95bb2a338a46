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

package driver

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cursor is an iterator over the results of a query or aggregation.
// *mongo.Cursor satisfies this interface.
type Cursor interface {
	// Next advances the cursor to the next result, returning false when the
	// results are exhausted or an error occurs. Err distinguishes the two.
	Next(ctx context.Context) bool
	// TryNext is like Next, but does not block waiting for new results.
	TryNext(ctx context.Context) bool
	// Decode decodes the current result into val.
	Decode(val interface{}) error
	// All decodes every remaining result into results, which must be a
	// pointer to a slice, then closes the cursor.
	All(ctx context.Context, results interface{}) error
	Err() error
	Close(ctx context.Context) error
	ID() int64
	RemainingBatchLength() int
}

// SingleResult is the result of a single-document operation.
// *mongo.SingleResult satisfies this interface.
type SingleResult interface {
	// Decode decodes the document into v. If there is no document,
	// mongo.ErrNoDocuments is returned.
	Decode(v interface{}) error
	Err() error
	Raw() (bson.Raw, error)
}

// ChangeStream is an iterator over change events. *mongo.ChangeStream
// satisfies this interface.
type ChangeStream interface {
	Next(ctx context.Context) bool
	TryNext(ctx context.Context) bool
	Decode(val interface{}) error
	Err() error
	Close(ctx context.Context) error
	ID() int64
	ResumeToken() bson.Raw
	RemainingBatchLength() int
}

var (
	_ Cursor       = (*mongo.Cursor)(nil)
	_ SingleResult = (*mongo.SingleResult)(nil)
	_ ChangeStream = (*mongo.ChangeStream)(nil)
)
