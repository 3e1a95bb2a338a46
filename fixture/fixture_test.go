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

package fixture

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gitlab.com/flimzy/testy"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/go-kivik/mongomock/driver"
)

func TestDecode(t *testing.T) {
	type tst struct {
		input string
		want  *File
		err   string
	}
	tests := testy.NewTable()
	tests.Add("minimal", tst{
		input: "databases: {shop: {collections: {orders: {documents: [{_id: 1}]}}}}",
		want: &File{Databases: map[string]Database{
			"shop": {Collections: map[string]Collection{
				"orders": {Documents: []map[string]interface{}{{"_id": 1}}},
			}},
		}},
	})
	tests.Add("invalid yaml", tst{
		input: "databases: [",
		err:   `^fixture: decode: yaml: `,
	})
	tests.Add("unknown field", tst{
		input: "databses: {}",
		err:   `(?s)^fixture: decode: yaml: .*field databses not found`,
	})
	tests.Add("no databases", tst{
		input: "databases:",
		err:   `(?s)^fixture: invalid: .*'required' tag`,
	})
	tests.Add("invalid database name", tst{
		input: "databases: {'my.db': {}}",
		err:   `(?s)^fixture: invalid: .*'excludesall' tag`,
	})
	tests.Add("invalid collection name", tst{
		input: "databases: {shop: {collections: {'$cmd': {}}}}",
		err:   `(?s)^fixture: invalid: database shop: .*'excludesall' tag`,
	})
	tests.Add("null document", tst{
		input: "databases: {shop: {collections: {orders: {documents: [~]}}}}",
		err:   `(?s)^fixture: invalid: collection shop.orders: .*'required' tag`,
	})
	tests.Add("null document in second database", tst{
		input: "databases: {audit: {}, shop: {collections: {orders: {documents: [{_id: 1}, ~]}}}}",
		err:   `(?s)^fixture: invalid: collection shop.orders: .*'required' tag`,
	})
	tests.Add("empty database and collection", tst{
		input: "databases: {audit: {}, shop: {collections: {orders: {}}}}",
		want: &File{Databases: map[string]Database{
			"audit": {},
			"shop":  {Collections: map[string]Collection{"orders": {}}},
		}},
	})

	tests.Run(t, func(t *testing.T, tt tst) {
		got, err := Decode(strings.NewReader(tt.input))
		if !testy.ErrorMatchesRE(tt.err, err) {
			t.Errorf("Unexpected error: %s", err)
		}
		if err != nil {
			return
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Error(d)
		}
	})
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	c, err := LoadFile("testdata/shop.yaml")
	if err != nil {
		t.Fatal(err)
	}

	names, err := c.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"audit", "shop"}, names); d != "" {
		t.Error(d)
	}

	var client driver.Client = c
	shop := client.Database("shop")
	if shop.Name() != "shop" {
		t.Errorf("database name = %q", shop.Name())
	}
	if shop.Client() != client {
		t.Error("database should point back to the client")
	}
	collNames, err := shop.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"customers", "orders"}, collNames); d != "" {
		t.Error(d)
	}

	orders := shop.Collection("orders")
	if orders.Database() != shop {
		t.Error("collection should point back to the database")
	}
	n, err := orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count = %d", n)
	}

	for i := 0; i < 2; i++ {
		cur, err := orders.Find(ctx, bson.M{})
		if err != nil {
			t.Fatal(err)
		}
		var got []struct {
			ID     int    `bson:"_id"`
			Status string `bson:"status"`
		}
		if err := cur.All(ctx, &got); err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].Status != "open" || got[1].ID != 2 {
			t.Errorf("pass %d: unexpected documents: %v", i, got)
		}
	}

	var first bson.M
	if err := orders.FindOne(ctx, bson.M{}).Decode(&first); err != nil {
		t.Fatal(err)
	}
	if first["status"] != "open" {
		t.Errorf("unexpected first document: %v", first)
	}

	var none bson.M
	err = shop.Collection("customers").FindOne(ctx, bson.M{}).Decode(&none)
	if err != mongo.ErrNoDocuments {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadFileWatch(t *testing.T) {
	c, err := LoadFile("testdata/shop.yaml")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	cs, err := c.Database("shop").Collection("orders").Watch(ctx, bson.A{})
	if err != nil {
		t.Fatal(err)
	}
	var count int
	for cs.Next(ctx) {
		count++
	}
	if count != 2 {
		t.Errorf("events = %d", count)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	if !testy.ErrorMatchesRE(`^fixture: open testdata/missing.yaml: `, err) {
		t.Errorf("Unexpected error: %s", err)
	}
}
