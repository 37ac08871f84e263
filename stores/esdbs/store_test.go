package esdbs

import (
	"context"
	"fmt"
	"testing"

	"github.com/EventStore/EventStore-Client-Go/esdb"
	"github.com/stretchr/testify/assert"

	"github.com/weegigs/wee-void/void"
)

func TestEventStore(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	ctx := context.Background()
	connection, teardown, err := NewTestServer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	client, cleanup, err := Connect(connection)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	streams := 0
	t.Run("esdb store validation", func(t *testing.T) {
		suite := void.NewStoreValidationSuite(ctx, func(t *testing.T) void.Store {
			streams++
			return NewStore(client, StreamName(fmt.Sprintf("void-test-%d", streams)))
		})
		suite.Run(t)
	})

	t.Run("keeps every save in the stream", func(t *testing.T) {
		store := NewStore(client, "void-history")
		for i := uint64(1); i <= 3; i++ {
			if !assert.Nil(t, store.Save(ctx, i)) {
				return
			}
		}

		stream, err := client.ReadStream(ctx, "void-history", esdb.ReadStreamOptions{From: esdb.Start{}}, 10)
		if !assert.Nil(t, err) {
			return
		}
		defer stream.Close()

		count := 0
		for {
			event, err := stream.Recv()
			if err != nil {
				break
			}
			assert.Equal(t, "void:saved", event.OriginalEvent().EventType)
			count++
		}
		assert.Equal(t, 3, count)
	})

	t.Run("rejects foreign events", func(t *testing.T) {
		_, err := client.AppendToStream(ctx, "void-foreign", esdb.AppendToStreamOptions{ExpectedRevision: esdb.Any{}}, esdb.EventData{
			ContentType: esdb.JsonContentType,
			EventType:   "other:event",
			Data:        []byte(`{}`),
		})
		if !assert.Nil(t, err) {
			return
		}

		_, _, err = NewStore(client, "void-foreign").Load(ctx)
		assert.NotNil(t, err)
	})
}
