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
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-kivik/mongomock/driver"
	"github.com/go-kivik/mongomock/stub"
)

// Behaviors maps method names to the behavior of the corresponding stub. A
// *stub.Stub value is installed as-is. Any other value is installed as a stub
// returning that value.
//
// Names outside the reference type's method set are attached to the handle
// as well, and are reachable through [Handle.Stub].
type Behaviors map[string]interface{}

// Handle is a fake driver object: one stub per method of a reference type.
type Handle struct {
	typ ReferenceType

	mu     sync.RWMutex
	stubs  map[string]*stub.Stub
	logger Logger
}

// Shape returns a handle exposing every method of rt. Methods with an entry
// in b are configured from it; all others are inert.
func Shape(rt ReferenceType, b Behaviors) *Handle {
	h := &Handle{
		typ:   rt,
		stubs: make(map[string]*stub.Stub, len(rt.Methods)+len(b)),
	}
	for _, method := range rt.Methods {
		h.stubs[method] = stub.New()
	}
	for method, behavior := range b {
		h.stubs[method] = toStub(behavior)
	}
	return h
}

func toStub(behavior interface{}) *stub.Stub {
	if s, ok := behavior.(*stub.Stub); ok {
		if s == nil {
			return stub.New()
		}
		return s
	}
	return stub.New().Returns(behavior)
}

// Type returns the handle's reference type.
func (h *Handle) Type() ReferenceType {
	return h.typ
}

// Stub returns the stub backing method, or nil if no such method was
// attached.
func (h *Handle) Stub(method string) *stub.Stub {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stubs[method]
}

// Methods returns the names of all attached methods, sorted.
func (h *Handle) Methods() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	methods := make([]string, 0, len(h.stubs))
	for method := range h.stubs {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// Reset clears the call history of every stub on the handle.
func (h *Handle) Reset() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.stubs {
		s.Reset()
	}
}

func (h *Handle) attach(method string, s *stub.Stub) {
	h.mu.Lock()
	h.stubs[method] = s
	h.mu.Unlock()
}

func (h *Handle) setLogger(l Logger) {
	h.mu.Lock()
	h.logger = l
	h.mu.Unlock()
}

// invoke calls the stub attached for method.
func (h *Handle) invoke(ctx context.Context, method string, args ...interface{}) result {
	h.mu.RLock()
	s, l := h.stubs[method], h.logger
	h.mu.RUnlock()
	if l != nil {
		l.Logf("%s.%s%s", h.typ.Name, method, formatArgs(args))
	}
	r := result{typ: h.typ.Name, method: method}
	if s == nil {
		return r
	}
	r.values, r.err = s.Call(ctx, args...)
	return r
}

// result holds the answer of a single stub call.
type result struct {
	typ, method string
	values      []interface{}
	err         error
}

func (r result) value(i int) interface{} {
	if i < len(r.values) {
		return r.values[i]
	}
	return nil
}

// error returns the stub's error, or else the first returned value that is
// an error, so that Returns(err) behaves like Rejects(err).
func (r result) error() error {
	if r.err != nil {
		return r.err
	}
	for _, v := range r.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// get returns the value at position i as a T, or the zero T if the stub
// returned nothing or an error there. It panics if the value is of another
// type.
func get[T any](r result, i int) T {
	var zero T
	v := r.value(i)
	if v == nil {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		if _, isErr := v.(error); isErr {
			return zero
		}
		panic(fmt.Sprintf("mongomock: %s.%s stub returned %T at position %d, want %s",
			r.typ, r.method, v, i, reflect.TypeOf(&zero).Elem()))
	}
	return t
}

// count returns the value at position i as an int64, accepting any Go
// integer type.
func (r result) count(i int) int64 {
	switch n := r.value(i).(type) {
	case nil, error:
		return 0
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	default:
		panic(fmt.Sprintf("mongomock: %s.%s stub returned %T at position %d, want an integer",
			r.typ, r.method, n, i))
	}
}

// singleResult returns the value at position 0 as a driver.SingleResult. A
// stub that returned only an error yields a result carrying that error.
func singleResult(r result) driver.SingleResult {
	sr := get[driver.SingleResult](r, 0)
	if sr == nil {
		if err := r.error(); err != nil {
			return SingleResultError(err)
		}
	}
	return sr
}

// withOptions appends the non-nil options to args, so they are recorded and
// matched as trailing arguments.
func withOptions[T any](args []interface{}, opts []*T) []interface{} {
	for _, opt := range opts {
		if opt != nil {
			args = append(args, opt)
		}
	}
	return args
}

func formatArgs(args []interface{}) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%v", arg)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
