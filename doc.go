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

// Package mongomock provides fake MongoDB client, database and collection
// handles for unit tests, along with fake query results.
//
// The handles implement the interfaces of the driver package, so code written
// against those interfaces can be exercised without a running server. Every
// method of a handle is backed by a [stub.Stub], which records calls and
// returns whatever the test configured:
//
//	orders := mongomock.NewCollection(mongomock.Behaviors{
//		"Find": mongomock.NewCursor([]bson.M{{"_id": 1}, {"_id": 2}}),
//	})
//	db := mongomock.NewDatabase(map[string]*mongomock.Collection{"orders": orders}, nil)
//	client := mongomock.NewClient(map[string]*mongomock.Database{"shop": db}, nil)
//
//	// exercise code that accepts a driver.Client ...
//
//	orders.Stub("Find").AssertCalled(t, bson.M{"status": "open"})
//
// Methods without configured behavior are inert: they record the call and
// return zero values. Database and collection getters return the handle
// registered under the exact name requested, or a single shared default
// handle for any other name.
//
// The two shapes of query results are emulated by [NewCursor], a pull-style
// cursor with chainable Limit, Skip and Sort methods, and [NewStream], a
// push-style stream whose items are emitted when it is constructed.
package mongomock // import "github.com/go-kivik/mongomock"
