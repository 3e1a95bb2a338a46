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
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/go-kivik/mongomock/driver"
)

var (
	errNoCurrent    = errors.New("mongomock: no current item")
	errCursorClosed = errors.New("mongomock: cursor is closed")
)

// cursorType lists the chainable query modifiers of a Cursor.
var cursorType = ReferenceType{
	Name:    "Cursor",
	Methods: []string{"Limit", "Skip", "Sort"},
}

// Cursor is a fake query result. It can be consumed in bulk with ToArray,
// pushed to a callback with ForEach, or pulled once through Next, like a
// *mongo.Cursor.
//
// Limit, Skip and Sort are recorded by the stubs of the same name and return
// the cursor unchanged.
type Cursor struct {
	*Handle

	set []interface{}

	mu         sync.Mutex
	iter       *iter
	current    interface{}
	hasCurrent bool
	err        error
	closeErr   error
	closed     bool
}

var _ driver.Cursor = &Cursor{}

// NewCursor returns a cursor over result. A slice yields its elements in
// order, nil yields nothing, and any other value yields itself.
func NewCursor(result interface{}) *Cursor {
	set := normalize(result)
	return &Cursor{
		Handle: Shape(cursorType, nil),
		set:    set,
		iter:   newIter(set),
	}
}

// CloseError sets the error returned by Close.
func (c *Cursor) CloseError(err error) *Cursor {
	c.mu.Lock()
	c.closeErr = err
	c.mu.Unlock()
	return c
}

// IterError sets the error reported by Err once the items are exhausted.
func (c *Cursor) IterError(err error) *Cursor {
	c.mu.Lock()
	c.iter.resultErr = err
	c.mu.Unlock()
	return c
}

// AddDelay makes Next pause for delay before returning the next item not yet
// added.
func (c *Cursor) AddDelay(delay time.Duration) *Cursor {
	c.mu.Lock()
	c.iter.push(&item{delay: delay})
	c.mu.Unlock()
	return c
}

// AddItem appends an item to the pull iteration, after any delay added so
// far. ToArray and ForEach do not see it.
func (c *Cursor) AddItem(v interface{}) *Cursor {
	c.mu.Lock()
	c.iter.push(&item{value: v})
	c.mu.Unlock()
	return c
}

func (c *Cursor) Limit(n int64) *Cursor {
	c.invoke(context.Background(), "Limit", n)
	return c
}

func (c *Cursor) Skip(n int64) *Cursor {
	c.invoke(context.Background(), "Skip", n)
	return c
}

func (c *Cursor) Sort(sort interface{}) *Cursor {
	c.invoke(context.Background(), "Sort", sort)
	return c
}

// ToArray returns every item of the result set, regardless of any pull
// iteration already done.
func (c *Cursor) ToArray(ctx context.Context) ([]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]interface{}{}, c.set...), nil
}

// ForEach calls fn with every item of the result set, in order, and returns
// the first error fn returns.
func (c *Cursor) ForEach(ctx context.Context, fn func(interface{}) error) error {
	for _, v := range c.set {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Next advances to the next item. Iteration is single pass: once Next has
// returned false, it keeps doing so.
func (c *Cursor) Next(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current, c.hasCurrent = nil, false
	if c.closed || c.err != nil {
		return false
	}
	v, err := c.iter.unshift(ctx)
	if err != nil {
		if err != io.EOF {
			c.err = err
		}
		return false
	}
	c.current, c.hasCurrent = v, true
	return true
}

// TryNext is Next; the fake never waits for results.
func (c *Cursor) TryNext(ctx context.Context) bool {
	return c.Next(ctx)
}

// Current returns the item Next last advanced to.
func (c *Cursor) Current() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Cursor) Decode(val interface{}) error {
	c.mu.Lock()
	current, ok := c.current, c.hasCurrent
	c.mu.Unlock()
	if !ok {
		return errNoCurrent
	}
	return decode(current, val)
}

// All decodes the items not yet consumed into results, which must be a
// pointer to a slice, and closes the cursor. It fails on a closed cursor.
func (c *Cursor) All(ctx context.Context, results interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errCursorClosed
	}
	values := c.iter.drain()
	c.mu.Unlock()
	if err := decodeAll(values, results); err != nil {
		return err
	}
	return c.Close(ctx)
}

func (c *Cursor) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close discards the items not yet consumed. ToArray and ForEach still see the
// full result set.
func (c *Cursor) Close(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.iter.drain()
	c.current, c.hasCurrent = nil, false
	return c.closeErr
}

// ID is always 0, as for an exhausted server cursor.
func (c *Cursor) ID() int64 { return 0 }

func (c *Cursor) RemainingBatchLength() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.iter.count()
}
