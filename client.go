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
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/go-kivik/mongomock/driver"
	"github.com/go-kivik/mongomock/stub"
)

// Client is a fake client handle.
type Client struct {
	*Handle
	def   *Database
	named map[string]*Database
}

var _ driver.Client = &Client{}

// NewClient returns a fake client handle configured from b. Its Database
// method returns the matching entry of databases for a registered name, and
// one shared default database for any other name. Connect always returns the
// client itself. Database and Connect entries in b are overridden.
func NewClient(databases map[string]*Database, b Behaviors) *Client {
	c := &Client{
		Handle: Shape(ClientType, b),
		def:    NewDatabase(nil, nil),
		named:  make(map[string]*Database, len(databases)),
	}
	getter := stub.New().Returns(c.def)
	for name, db := range databases {
		if db == nil {
			continue
		}
		c.named[name] = db
		getter.WithArgs(name).Returns(db)
	}
	c.attach("Database", getter)
	c.attach("Connect", stub.New().Resolves(c))
	return c
}

// Default returns the database handed out for unregistered names.
func (c *Client) Default() *Database {
	return c.def
}

// Connect returns the client itself.
func (c *Client) Connect(ctx context.Context) (driver.Client, error) {
	r := c.invoke(ctx, "Connect")
	return get[driver.Client](r, 0), r.error()
}

// Database returns the database registered under name. Options are not
// passed to the stub, so overrides match on the name alone.
func (c *Client) Database(name string, _ ...*options.DatabaseOptions) driver.Database {
	r := c.invoke(context.Background(), "Database", name)
	return get[driver.Database](r, 0)
}

func (c *Client) Disconnect(ctx context.Context) error {
	return c.invoke(ctx, "Disconnect").error()
}

func (c *Client) ListDatabaseNames(ctx context.Context, filter interface{}, opts ...*options.ListDatabasesOptions) ([]string, error) {
	r := c.invoke(ctx, "ListDatabaseNames", withOptions([]interface{}{filter}, opts)...)
	return get[[]string](r, 0), r.error()
}

func (c *Client) ListDatabases(ctx context.Context, filter interface{}, opts ...*options.ListDatabasesOptions) (mongo.ListDatabasesResult, error) {
	r := c.invoke(ctx, "ListDatabases", withOptions([]interface{}{filter}, opts)...)
	return get[mongo.ListDatabasesResult](r, 0), r.error()
}

func (c *Client) NumberSessionsInProgress() int {
	r := c.invoke(context.Background(), "NumberSessionsInProgress")
	return int(r.count(0))
}

func (c *Client) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	args := []interface{}{}
	if rp != nil {
		args = append(args, rp)
	}
	return c.invoke(ctx, "Ping", args...).error()
}

func (c *Client) StartSession(opts ...*options.SessionOptions) (mongo.Session, error) {
	r := c.invoke(context.Background(), "StartSession", withOptions(nil, opts)...)
	return get[mongo.Session](r, 0), r.error()
}

// UseSession records the call and returns the stub's error. fn is not run,
// since a mongo.SessionContext cannot be faked.
func (c *Client) UseSession(ctx context.Context, fn func(mongo.SessionContext) error) error {
	return c.invoke(ctx, "UseSession").error()
}

func (c *Client) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (driver.ChangeStream, error) {
	r := c.invoke(ctx, "Watch", withOptions([]interface{}{pipeline}, opts)...)
	return get[driver.ChangeStream](r, 0), r.error()
}
