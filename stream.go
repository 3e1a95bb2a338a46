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
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/go-kivik/mongomock/driver"
)

// Stream is a fake push-style query result. Every item is emitted when the
// stream is created; the channel holding them is buffered, so a consumer
// that attaches later still receives all of them, followed by the channel
// closing.
//
// Stream also satisfies driver.ChangeStream. Items, ForEach and Next drain
// the same channel, so each item is delivered once.
type Stream struct {
	ch chan interface{}

	mu         sync.Mutex
	current    interface{}
	hasCurrent bool
	err        error
	closed     bool
}

var _ driver.ChangeStream = &Stream{}

// NewStream returns a stream that has already emitted every item of result,
// then end-of-stream. result is normalized as for NewCursor.
func NewStream(result interface{}) *Stream {
	set := normalize(result)
	ch := make(chan interface{}, len(set))
	for _, v := range set {
		ch <- v
	}
	close(ch)
	return &Stream{ch: ch}
}

// Stream returns s itself.
func (s *Stream) Stream() *Stream {
	return s
}

// Items returns the channel the items were emitted on. It is closed after
// the last item.
func (s *Stream) Items() <-chan interface{} {
	return s.ch
}

// ForEach calls fn with every item not yet consumed, in order, and returns
// the first error fn returns.
func (s *Stream) ForEach(ctx context.Context, fn func(interface{}) error) error {
	for v := range s.ch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stream) Next(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current, s.hasCurrent = nil, false
	if s.closed || s.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}
	v, ok := <-s.ch
	if !ok {
		return false
	}
	s.current, s.hasCurrent = v, true
	return true
}

// TryNext is Next; the items are always available.
func (s *Stream) TryNext(ctx context.Context) bool {
	return s.Next(ctx)
}

// Current returns the item Next last advanced to.
func (s *Stream) Current() interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Stream) Decode(val interface{}) error {
	s.mu.Lock()
	current, ok := s.current, s.hasCurrent
	s.mu.Unlock()
	if !ok {
		return errNoCurrent
	}
	return decode(current, val)
}

func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close discards the items not yet consumed, so Items, ForEach and Next yield
// nothing afterwards.
func (s *Stream) Close(context.Context) error {
	s.mu.Lock()
	s.closed = true
	for range s.ch {
	}
	s.current, s.hasCurrent = nil, false
	s.mu.Unlock()
	return nil
}

// ID is always 0.
func (s *Stream) ID() int64 { return 0 }

// ResumeToken is always nil.
func (s *Stream) ResumeToken() bson.Raw { return nil }

func (s *Stream) RemainingBatchLength() int {
	return len(s.ch)
}
