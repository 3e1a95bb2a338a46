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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gitlab.com/flimzy/testy"
)

func TestStubCall(t *testing.T) {
	type tst struct {
		stub   *Stub
		ctx    context.Context
		args   []interface{}
		values []interface{}
		err    string
	}
	tests := testy.NewTable()
	tests.Add("inert", tst{
		stub:   New(),
		args:   []interface{}{"foo"},
		values: []interface{}{},
	})
	tests.Add("returns", tst{
		stub:   New().Returns("a", 1),
		values: []interface{}{"a", 1},
	})
	tests.Add("resolves", tst{
		stub:   New().Rejects(errors.New("boom")).Resolves("ok"),
		values: []interface{}{"ok"},
	})
	tests.Add("rejects", tst{
		stub:   New().Returns("a").Rejects(errors.New("boom")),
		values: []interface{}{},
		err:    "boom",
	})
	tests.Add("returns after rejects", tst{
		stub:   New().Rejects(errors.New("boom")).Returns("partial"),
		values: []interface{}{"partial"},
		err:    "boom",
	})
	tests.Add("executes", tst{
		stub: New().Executes(func(_ context.Context, args ...interface{}) ([]interface{}, error) {
			return []interface{}{len(args)}, nil
		}),
		args:   []interface{}{"a", "b"},
		values: []interface{}{2},
	})
	tests.Add("conditional match", func() interface{} {
		s := New().Returns("default")
		s.WithArgs("orders").Returns("orders")
		return tst{
			stub:   s,
			args:   []interface{}{"orders"},
			values: []interface{}{"orders"},
		}
	})
	tests.Add("conditional miss", func() interface{} {
		s := New().Returns("default")
		s.WithArgs("orders").Returns("orders")
		return tst{
			stub:   s,
			args:   []interface{}{"Orders"},
			values: []interface{}{"default"},
		}
	})
	tests.Add("conditional without behavior", func() interface{} {
		s := New().Returns("default")
		s.WithArgs("orders")
		return tst{
			stub:   s,
			args:   []interface{}{"orders"},
			values: []interface{}{"default"},
		}
	})
	tests.Add("conditional arg count", func() interface{} {
		s := New().Returns("default")
		s.WithArgs("orders").Returns("orders")
		return tst{
			stub:   s,
			args:   []interface{}{"orders", "extra"},
			values: []interface{}{"default"},
		}
	})
	tests.Add("conditional anything", func() interface{} {
		s := New()
		s.WithArgs("orders", Anything).Returns("any")
		return tst{
			stub:   s,
			args:   []interface{}{"orders", 42},
			values: []interface{}{"any"},
		}
	})
	tests.Add("conditional matched by", func() interface{} {
		s := New()
		s.WithArgs(MatchedBy(func(n int) bool { return n > 10 })).Returns("big")
		return tst{
			stub:   s,
			args:   []interface{}{42},
			values: []interface{}{"big"},
		}
	})
	tests.Add("latest condition wins", func() interface{} {
		s := New()
		s.WithArgs(Anything).Returns("first")
		s.WithArgs("x").Returns("second")
		return tst{
			stub:   s,
			args:   []interface{}{"x"},
			values: []interface{}{"second"},
		}
	})
	tests.Add("delay", tst{
		stub:   New().Returns("late").Delays(time.Millisecond),
		values: []interface{}{"late"},
	})
	tests.Add("delay cancelled", tst{
		stub: New().Returns("late").Delays(time.Second),
		ctx:  canceledContext(),
		err:  "context canceled",
	})
	tests.Add("conditional delay cancelled", func() interface{} {
		s := New().Returns("fast")
		s.WithArgs("slow").Delays(time.Second)
		return tst{
			stub: s,
			ctx:  canceledContext(),
			args: []interface{}{"slow"},
			err:  "context canceled",
		}
	})

	tests.Run(t, func(t *testing.T, test tst) {
		ctx := test.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		values, err := test.stub.Call(ctx, test.args...)
		if !testy.ErrorMatches(test.err, err) {
			t.Errorf("Unexpected error: %s", err)
		}
		if d := cmp.Diff(test.values, values); d != "" {
			t.Errorf("Unexpected values:\n%s", d)
		}
		if n := test.stub.CallCount(); n != 1 {
			t.Errorf("Unexpected call count: %d", n)
		}
	})
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestStubNilContext(t *testing.T) {
	s := New().Returns("x").Delays(time.Millisecond)
	values, err := s.Call(nil, "a") //nolint:staticcheck // nil context is tolerated
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]interface{}{"x"}, values); d != "" {
		t.Error(d)
	}
}

func TestWithArgsSameCondition(t *testing.T) {
	s := New()
	a := s.WithArgs("orders", 1)
	b := s.WithArgs("orders", 1)
	if a != b {
		t.Error("Expected WithArgs to return the same conditional stub for equal arguments")
	}
	if c := s.WithArgs("orders", 2); c == a {
		t.Error("Expected a distinct conditional stub for different arguments")
	}
}

func TestConditionalHistory(t *testing.T) {
	s := New().Returns("default")
	cond := s.WithArgs("orders").Returns("orders")
	ctx := context.Background()
	_, _ = s.Call(ctx, "orders")
	_, _ = s.Call(ctx, "users")
	_, _ = s.Call(ctx, "orders")

	if n := s.CallCount(); n != 3 {
		t.Errorf("Unexpected parent call count: %d", n)
	}
	if n := cond.CallCount(); n != 2 {
		t.Errorf("Unexpected conditional call count: %d", n)
	}
	got := make([]interface{}, 0, 3)
	for _, call := range s.Calls() {
		got = append(got, call.Args...)
	}
	if d := cmp.Diff([]interface{}{"orders", "users", "orders"}, got); d != "" {
		t.Error(d)
	}
}

func TestDelayedConcurrentCalls(t *testing.T) {
	s := New().Returns("x").Delays(10 * time.Millisecond)
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func(i int) {
			_, _ = s.Call(context.Background(), i)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 5; i++ {
		<-done
	}
	if n := s.CallCount(); n != 5 {
		t.Errorf("Unexpected call count: %d", n)
	}
}
