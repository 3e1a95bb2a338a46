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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/go-kivik/mongomock/driver"
)

// NewSingleResult returns a single result holding doc, as returned by
// FindOne. A nil doc yields a result whose Err is mongo.ErrNilDocument.
func NewSingleResult(doc interface{}) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

// SingleResultError returns a single result that holds no document and
// reports err from Decode, Err and Raw. Use mongo.ErrNoDocuments to fake a
// query without a match.
func SingleResultError(err error) driver.SingleResult {
	return errResult{err: err}
}

type errResult struct {
	err error
}

func (r errResult) Decode(interface{}) error { return r.err }
func (r errResult) Err() error               { return r.err }
func (r errResult) Raw() (bson.Raw, error)   { return nil, r.err }
