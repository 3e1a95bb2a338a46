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

// Package stub provides recording, configurable substitutes for a single
// callable unit.
//
// A Stub records every call made through [Stub.Call], and answers with the
// behavior configured by [Stub.Returns], [Stub.Resolves], [Stub.Rejects] or
// [Stub.Executes]. Behavior may be narrowed to an exact argument list with
// [Stub.WithArgs]:
//
//	s := stub.New().Returns(defaultValue)
//	s.WithArgs("orders").Returns(orders)
//
// Argument lists are compared with testify's mock argument matching, so
// [Anything], [AnythingOfType] and [MatchedBy] may be used in place of any
// concrete argument.
package stub

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/go-kivik/mongomock/internal/delay"
)

// Anything matches any argument in an argument list passed to
// [Stub.WithArgs] or [Stub.CalledWith].
const Anything = mock.Anything

var (
	// AnythingOfType matches any argument of the named type.
	AnythingOfType = mock.AnythingOfType
	// MatchedBy matches any argument for which fn returns true. fn must be a
	// function of one argument returning bool.
	MatchedBy = mock.MatchedBy
)

// Executor is a custom stub implementation. It receives the call arguments
// and returns the call's result values and error.
type Executor func(ctx context.Context, args ...interface{}) ([]interface{}, error)

// Call is a single recorded invocation of a Stub.
type Call struct {
	// Args are the arguments the stub was called with.
	Args []interface{}
	// Values are the values the call returned.
	Values []interface{}
	// Err is the error the call returned.
	Err error
}

// Stub is a recording, configurable substitute for a callable unit. The zero
// value is not usable; call [New].
type Stub struct {
	mu sync.Mutex

	// args is set only for conditional stubs created by WithArgs.
	args mock.Arguments

	configured bool
	values     []interface{}
	err        error
	delay      time.Duration
	exec       Executor

	conditions []*Stub
	calls      []Call
}

// New returns a new, inert stub. An inert stub records calls and returns no
// values and a nil error.
func New() *Stub {
	return &Stub{}
}

// Returns configures the stub to return values, alongside any error
// previously configured with Rejects.
func (s *Stub) Returns(values ...interface{}) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = true
	s.values = values
	s.exec = nil
	return s
}

// Resolves configures the stub to return values and a nil error.
func (s *Stub) Resolves(values ...interface{}) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = true
	s.values = values
	s.err = nil
	s.exec = nil
	return s
}

// Rejects configures the stub to return err and no values.
func (s *Stub) Rejects(err error) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = true
	s.values = nil
	s.err = err
	s.exec = nil
	return s
}

// Executes configures the stub to delegate to fn.
func (s *Stub) Executes(fn Executor) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = true
	s.exec = fn
	return s
}

// Delays configures the stub to wait for delay before answering. If the
// call's context is cancelled first, the context error is returned instead.
func (s *Stub) Delays(delay time.Duration) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = delay
	return s
}

// WithArgs returns a conditional stub, which answers calls whose argument
// list matches args exactly. Calling WithArgs twice with equal arguments
// returns the same conditional stub. A conditional stub without configured
// behavior answers with the behavior of its parent.
func (s *Stub) WithArgs(args ...interface{}) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conditions {
		if assert.ObjectsAreEqual([]interface{}(c.args), args) {
			return c
		}
	}
	c := &Stub{args: mock.Arguments(args)}
	s.conditions = append(s.conditions, c)
	return c
}

// Call invokes the stub with args, records the call, and returns the
// configured values and error.
func (s *Stub) Call(ctx context.Context, args ...interface{}) ([]interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	cond := s.match(args)
	b := s.behavior()
	if cond != nil {
		cond.mu.Lock()
		if cond.configured {
			b = cond.behavior()
		}
		if cond.delay != 0 {
			b.delay = cond.delay
		}
		cond.mu.Unlock()
	}
	s.mu.Unlock()

	values, err := b.answer(ctx, args)
	call := Call{Args: args, Values: values, Err: err}
	s.record(call)
	if cond != nil {
		cond.record(call)
	}
	return values, err
}

// match returns the most recently registered condition matching args, or nil.
// s.mu must be held.
func (s *Stub) match(args []interface{}) *Stub {
	for i := len(s.conditions) - 1; i >= 0; i-- {
		if _, diffs := s.conditions[i].args.Diff(args); diffs == 0 {
			return s.conditions[i]
		}
	}
	return nil
}

func (s *Stub) record(call Call) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

type behavior struct {
	values []interface{}
	err    error
	delay  time.Duration
	exec   Executor
}

// behavior returns a snapshot of the configured behavior. s.mu must be held.
func (s *Stub) behavior() behavior {
	return behavior{
		values: s.values,
		err:    s.err,
		delay:  s.delay,
		exec:   s.exec,
	}
}

func (b behavior) answer(ctx context.Context, args []interface{}) ([]interface{}, error) {
	if err := delay.Pause(ctx, b.delay); err != nil {
		return nil, err
	}
	if b.exec != nil {
		return b.exec(ctx, args...)
	}
	values := make([]interface{}, len(b.values))
	copy(values, b.values)
	return values, b.err
}
