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

package stub

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Calls returns a copy of the recorded calls, in the order they were made.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]Call, len(s.calls))
	copy(calls, s.calls)
	return calls
}

// CallCount returns the number of recorded calls.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Called returns true if the stub was called at least once.
func (s *Stub) Called() bool {
	return s.CallCount() > 0
}

// LastCall returns the most recent call. ok is false if the stub was never
// called.
func (s *Stub) LastCall() (call Call, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// CallsWith returns the recorded calls whose arguments match args.
func (s *Stub) CallsWith(args ...interface{}) []Call {
	expected := mock.Arguments(args)
	var calls []Call
	for _, call := range s.Calls() {
		if _, diffs := expected.Diff(call.Args); diffs == 0 {
			calls = append(calls, call)
		}
	}
	return calls
}

// CalledWith returns true if any recorded call's arguments match args.
func (s *Stub) CalledWith(args ...interface{}) bool {
	return len(s.CallsWith(args...)) > 0
}

// Reset clears the call history of the stub and its conditional stubs. The
// configured behavior is kept.
func (s *Stub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	for _, c := range s.conditions {
		c.Reset()
	}
}

// ResetBehavior restores the stub to its inert state, discarding conditional
// stubs. The call history is kept.
func (s *Stub) ResetBehavior() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = false
	s.values = nil
	s.err = nil
	s.delay = 0
	s.exec = nil
	s.conditions = nil
}

// AssertCalled asserts that the stub was called with arguments matching
// args.
func (s *Stub) AssertCalled(t assert.TestingT, args ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if s.CalledWith(args...) {
		return true
	}
	return assert.Fail(t, "Expected stub to have been called",
		fmt.Sprintf("Expected call with: %s\nActual calls:%s", formatArgs(args), s.formatCalls()))
}

// AssertNotCalled asserts that the stub was never called with arguments
// matching args.
func (s *Stub) AssertNotCalled(t assert.TestingT, args ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !s.CalledWith(args...) {
		return true
	}
	return assert.Fail(t, "Expected stub not to have been called",
		fmt.Sprintf("Unexpected call with: %s", formatArgs(args)))
}

// AssertCallCount asserts that the stub was called exactly n times.
func (s *Stub) AssertCallCount(t assert.TestingT, n int) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.Equal(t, n, s.CallCount(), "unexpected number of calls")
}

func (s *Stub) formatCalls() string {
	calls := s.Calls()
	if len(calls) == 0 {
		return " none"
	}
	var b strings.Builder
	for _, call := range calls {
		b.WriteString("\n\t- ")
		b.WriteString(formatArgs(call.Args))
	}
	return b.String()
}

func formatArgs(args []interface{}) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%v", arg)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
