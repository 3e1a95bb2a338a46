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
	"time"

	"github.com/go-kivik/mongomock/internal/delay"
)

// item is an entry of an iter. An entry with a non-zero delay carries no
// value; it pauses the consumer before the next entry.
type item struct {
	delay time.Duration
	value interface{}
}

// iter is a single-pass queue of result items.
type iter struct {
	items     []*item
	resultErr error
}

func newIter(values []interface{}) *iter {
	it := &iter{items: make([]*item, 0, len(values))}
	for _, v := range values {
		it.push(&item{value: v})
	}
	return it
}

func (i *iter) push(item *item) {
	i.items = append(i.items, item)
}

// unshift removes and returns the next value. It returns io.EOF, or the
// configured result error, once the items are exhausted.
func (i *iter) unshift(ctx context.Context) (interface{}, error) {
	if len(i.items) == 0 {
		if i.resultErr != nil {
			return nil, i.resultErr
		}
		return nil, io.EOF
	}
	var next *item
	next, i.items = i.items[0], i.items[1:]
	if next.delay == 0 {
		return next.value, nil
	}
	if err := delay.Pause(ctx, next.delay); err != nil {
		return nil, err
	}
	return i.unshift(ctx)
}

// count returns the number of values left, ignoring delays.
func (i *iter) count() int {
	var count int
	for _, it := range i.items {
		if it.delay == 0 {
			count++
		}
	}
	return count
}

// drain removes and returns every value left, without pausing.
func (i *iter) drain() []interface{} {
	values := make([]interface{}, 0, len(i.items))
	for _, it := range i.items {
		if it.delay == 0 {
			values = append(values, it.value)
		}
	}
	i.items = nil
	return values
}
