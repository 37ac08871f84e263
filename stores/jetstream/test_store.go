package jetstream

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewTestServer starts a JetStream enabled NATS server and returns its URL.
func NewTestServer(ctx context.Context) (URL, func(), error) {
	server, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "nats:alpine",
				ExposedPorts: []string{"4222/tcp"},
				WaitingFor:   wait.ForListeningPort("4222"),
				Cmd:          []string{"--jetstream"},
			},
			Started: true,
		},
	)
	if err != nil {
		return "", nil, err
	}

	teardown := func() {
		if err := server.Terminate(ctx); err != nil {
			panic(err)
		}
	}

	host, err := server.Host(ctx)
	if err != nil {
		teardown()
		return "", nil, err
	}

	port, err := server.MappedPort(ctx, "4222")
	if err != nil {
		teardown()
		return "", nil, err
	}

	return URL(fmt.Sprintf("nats://%s:%s", host, port.Port())), teardown, nil
}
