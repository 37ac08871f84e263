package esdbs

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewTestServer starts an insecure single node EventStoreDB and returns its
// connection string.
func NewTestServer(ctx context.Context) (ConnectionString, func(), error) {
	db, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image: "eventstore/eventstore:latest",
				Env: map[string]string{
					"EVENTSTORE_CLUSTER_SIZE":    "1",
					"EVENTSTORE_RUN_PROJECTIONS": "None",
					"EVENTSTORE_HTTP_PORT":       "2113",
					"EVENTSTORE_INSECURE":        "true",
				},
				ExposedPorts: []string{"2113/tcp"},
				WaitingFor:   wait.ForListeningPort("2113"),
			},
			Started: true,
		},
	)
	if err != nil {
		return "", nil, err
	}

	teardown := func() {
		if err := db.Terminate(ctx); err != nil {
			panic(err)
		}
	}

	host, err := db.Host(ctx)
	if err != nil {
		teardown()
		return "", nil, err
	}

	port, err := db.MappedPort(ctx, "2113")
	if err != nil {
		teardown()
		return "", nil, err
	}

	return ConnectionString(fmt.Sprintf("esdb://admin:changeit@%s:%s?tls=false", host, port.Port())), teardown, nil
}
