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

package delay

import (
	"context"
	"testing"
	"time"

	"gitlab.com/flimzy/testy"
)

func TestPause(t *testing.T) {
	type tst struct {
		ctx   func() context.Context
		delay time.Duration
		err   string
	}
	cancelled := func() context.Context {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	tests := testy.NewTable()
	tests.Add("zero", tst{
		ctx: cancelled,
	})
	tests.Add("expires", tst{
		ctx:   context.Background,
		delay: time.Millisecond,
	})
	tests.Add("cancelled", tst{
		ctx:   cancelled,
		delay: time.Minute,
		err:   "context canceled",
	})

	tests.Run(t, func(t *testing.T, tt tst) {
		err := Pause(tt.ctx(), tt.delay)
		if !testy.ErrorMatches(tt.err, err) {
			t.Errorf("Unexpected error: %s", err)
		}
	})
}
