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

package mongodriver

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/go-kivik/mongomock/driver"
)

const defaultRetries = 5

// Logger receives a line for every failed connection attempt.
type Logger interface {
	Logf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...interface{}) {}

type config struct {
	retries uint64
	logger  Logger
	client  []*options.ClientOptions
}

// Option configures Connect.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithRetries sets how many times a failed ping is retried, with exponential
// backoff, before Connect gives up. The default is 5.
func WithRetries(n uint64) Option {
	return optionFunc(func(c *config) { c.retries = n })
}

// WithLogger sets the logger that failed attempts are reported to.
func WithLogger(l Logger) Option {
	return optionFunc(func(c *config) {
		if l == nil {
			l = nopLogger{}
		}
		c.logger = l
	})
}

// WithClientOptions passes opts to mongo.Connect, after the URI.
func WithClientOptions(opts ...*options.ClientOptions) Option {
	return optionFunc(func(c *config) { c.client = append(c.client, opts...) })
}

// Connect connects to the deployment at uri and waits for the primary to
// answer a ping.
func Connect(ctx context.Context, uri string, opts ...Option) (driver.Client, error) {
	cfg := &config{
		retries: defaultRetries,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	clientOpts := append([]*options.ClientOptions{options.Client().ApplyURI(uri)}, cfg.client...)
	c, err := mongo.Connect(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "mongodriver: connect")
	}
	if err := ping(ctx, c, cfg); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}
	return Wrap(c), nil
}

func ping(ctx context.Context, c *mongo.Client, cfg *config) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.retries), ctx)
	var i int
	err := backoff.Retry(func() error {
		i++
		err := c.Ping(ctx, readpref.Primary())
		if err != nil {
			cfg.logger.Logf("ping attempt #%d failed: %s", i, err)
		}
		return err
	}, bo)
	return errors.Wrapf(err, "mongodriver: ping failed after %d attempts", i)
}
