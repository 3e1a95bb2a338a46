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

// Logger receives one line for every call made on a traced handle.
// *testing.T and *testing.B satisfy this interface.
type Logger interface {
	Logf(format string, args ...interface{})
}

// Trace installs l on the collection. Pass nil to stop tracing.
func (c *Collection) Trace(l Logger) *Collection {
	c.setLogger(l)
	return c
}

// Trace installs l on the database, its default collection, and every named
// collection it was created with.
func (d *Database) Trace(l Logger) *Database {
	d.setLogger(l)
	d.def.Trace(l)
	for _, c := range d.named {
		c.Trace(l)
	}
	return d
}

// Trace installs l on the client, its default database, and every named
// database it was created with, recursively.
func (c *Client) Trace(l Logger) *Client {
	c.setLogger(l)
	c.def.Trace(l)
	for _, db := range c.named {
		db.Trace(l)
	}
	return c
}
