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

//go:build !js

package mongodriver

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/go-kivik/mongomock/internal/mongotest"
)

func TestIntegration(t *testing.T) {
	uri := mongotest.URI(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := Connect(ctx, uri, WithLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	if _, err := client.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	db := client.Database("mongomock_integration")
	t.Cleanup(func() { _ = db.Drop(context.Background()) })
	coll := db.Collection("orders")

	if _, err := coll.InsertMany(ctx, []interface{}{
		bson.M{"_id": 1, "status": "open"},
		bson.M{"_id": 2, "status": "closed"},
	}); err != nil {
		t.Fatal(err)
	}
	cur, err := coll.Find(ctx, bson.M{"status": "open"})
	if err != nil {
		t.Fatal(err)
	}
	var got []bson.M
	if err := cur.All(ctx, &got); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]bson.M{{"_id": int32(1), "status": "open"}}, got); d != "" {
		t.Error(d)
	}

	var doc bson.M
	err = coll.FindOne(ctx, bson.M{"_id": 3}).Decode(&doc)
	if err == nil {
		t.Fatal("expected no document")
	}
	if coll.Database().Name() != "mongomock_integration" {
		t.Error("unexpected parent database")
	}
}
