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
	"container/ring"
	"fmt"
	"sync"
)

const defaultTraceCapacity = 100

// TraceLog is a Logger that keeps the most recent lines in memory, for tests
// that assert on the order of calls across handles.
type TraceLog struct {
	mu   sync.Mutex
	ring *ring.Ring
}

var _ Logger = &TraceLog{}

// NewTraceLog returns a TraceLog holding up to capacity lines. A capacity
// below 1 selects the default of 100.
func NewTraceLog(capacity int) *TraceLog {
	if capacity < 1 {
		capacity = defaultTraceCapacity
	}
	return &TraceLog{ring: ring.New(capacity)}
}

func (l *TraceLog) Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	l.ring.Value = msg
	l.ring = l.ring.Next()
	l.mu.Unlock()
}

// Lines returns the retained lines, oldest first.
func (l *TraceLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines := make([]string, 0, l.ring.Len())
	l.ring.Do(func(v interface{}) {
		if msg, ok := v.(string); ok {
			lines = append(lines, msg)
		}
	})
	return lines
}

// Reset discards all retained lines.
func (l *TraceLog) Reset() {
	l.mu.Lock()
	l.ring = ring.New(l.ring.Len())
	l.mu.Unlock()
}
