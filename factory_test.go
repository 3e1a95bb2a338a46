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
	"testing"

	"github.com/go-kivik/mongomock/driver"
	"github.com/go-kivik/mongomock/stub"
)

func TestDatabaseDefaultCollection(t *testing.T) {
	db := NewDatabase(nil, nil)
	a := db.Collection("a")
	b := db.Collection("b")
	if a != b {
		t.Error("unregistered names should share the default collection")
	}
	if a != driver.Collection(db.Default()) {
		t.Error("Default should return the shared collection")
	}
}

func TestDatabaseNamedCollection(t *testing.T) {
	orders := NewCollection(nil)
	db := NewDatabase(map[string]*Collection{"orders": orders}, nil)
	if got := db.Collection("orders"); got != driver.Collection(orders) {
		t.Errorf("unexpected collection: %v", got)
	}
	other := db.Collection("users")
	if other == driver.Collection(orders) {
		t.Error("unregistered name returned the named collection")
	}
	if other != driver.Collection(db.Default()) {
		t.Error("unregistered name should return the default collection")
	}
	if !db.Stub("Collection").CalledWith("orders") {
		t.Error("getter call not recorded")
	}
}

func TestDatabaseGetterOverridesBehavior(t *testing.T) {
	orders := NewCollection(nil)
	db := NewDatabase(map[string]*Collection{"orders": orders}, Behaviors{
		"Collection": NewCollection(nil),
		"Name":       "shop",
	})
	if got := db.Collection("orders"); got != driver.Collection(orders) {
		t.Errorf("unexpected collection: %v", got)
	}
	if got := db.Name(); got != "shop" {
		t.Errorf("Name = %q", got)
	}
}

func TestClientDatabases(t *testing.T) {
	shop := NewDatabase(nil, nil)
	c := NewClient(map[string]*Database{"shop": shop}, nil)
	if got := c.Database("shop"); got != driver.Database(shop) {
		t.Errorf("unexpected database: %v", got)
	}
	a, b := c.Database("a"), c.Database("b")
	if a != b || a != driver.Database(c.Default()) {
		t.Error("unregistered names should share the default database")
	}
	if a == driver.Database(shop) {
		t.Error("default database should differ from the named one")
	}
}

func TestClientConnect(t *testing.T) {
	c := NewClient(nil, Behaviors{
		"Connect": stub.New().Rejects(context.Canceled),
	})
	got, err := c.Connect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != driver.Client(c) {
		t.Errorf("Connect returned %v, want the client itself", got)
	}
	if c.Stub("Connect").CallCount() != 1 {
		t.Error("Connect call not recorded")
	}
}

func TestClientHierarchy(t *testing.T) {
	orders := NewCollection(Behaviors{"EstimatedDocumentCount": int64(12)})
	c := NewClient(map[string]*Database{
		"shop": NewDatabase(map[string]*Collection{"orders": orders}, nil),
	}, nil)

	var client driver.Client = c
	n, err := client.Database("shop").Collection("orders").EstimatedDocumentCount(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Errorf("count = %d", n)
	}
	orders.Stub("EstimatedDocumentCount").AssertCallCount(t, 1)
}

func TestClientPing(t *testing.T) {
	c := NewClient(nil, nil)
	if err := c.Ping(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	c.Stub("Ping").AssertCalled(t)
}

func TestClientSessions(t *testing.T) {
	c := NewClient(nil, Behaviors{"NumberSessionsInProgress": 2})
	if n := c.NumberSessionsInProgress(); n != 2 {
		t.Errorf("sessions = %d", n)
	}
	if err := c.UseSession(context.Background(), nil); err != nil {
		t.Error(err)
	}
}
