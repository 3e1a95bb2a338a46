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

//go:build !js

// Package mongotest starts disposable MongoDB servers for integration tests.
package mongotest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultImage is the image started when none is given.
const DefaultImage = "mongo:7"

// EnvIntegration must be set for integration tests to run.
const EnvIntegration = "MONGOMOCK_INTEGRATION"

// StartMongo starts a MongoDB container from image. It returns the connection
// URI, and a function that terminates the container.
func StartMongo(ctx context.Context, image string) (uri string, terminate func(), err error) {
	if image == "" {
		image = DefaultImage
	}
	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(120 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "start container")
	}
	terminate = func() {
		_ = container.Terminate(context.Background())
	}
	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return "", nil, errors.Wrap(err, "container host")
	}
	port, err := container.MappedPort(ctx, "27017/tcp")
	if err != nil {
		terminate()
		return "", nil, errors.Wrap(err, "container port")
	}
	return fmt.Sprintf("mongodb://%s:%s", host, port.Port()), terminate, nil
}

// URI returns the URI of a MongoDB server for t, starting one if needed. The
// test is skipped unless EnvIntegration is set. If MONGOMOCK_URI is set, that
// server is used instead of a container.
func URI(t *testing.T) string {
	t.Helper()
	if os.Getenv(EnvIntegration) == "" {
		t.Skipf("%s not set", EnvIntegration)
	}
	if uri := os.Getenv("MONGOMOCK_URI"); uri != "" {
		return uri
	}
	uri, terminate, err := StartMongo(context.Background(), os.Getenv("MONGOMOCK_IMAGE"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(terminate)
	return uri
}
