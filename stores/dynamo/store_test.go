package dynamo

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"

	"github.com/weegigs/wee-void/void"
)

var entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

func createKey() Key {
	return Key(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

func TestDynamoStore(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	ctx := context.Background()
	endpoint, teardown, err := DynamoTestContainer(ctx)
	if err != nil {
		t.Logf("failed to start dynamodb local. %+v", err)
		t.FailNow()
	}
	defer teardown()

	base, err := LocalStore(ctx, endpoint, TableName("test-void"), DefaultKey)
	if err != nil {
		t.Logf("failed to create test store. %+v", err)
		t.FailNow()
	}

	t.Run("dynamo store validation", func(t *testing.T) {
		suite := void.NewStoreValidationSuite(ctx, func(t *testing.T) void.Store {
			return NewStore(base.db, TableName(base.table), createKey())
		})
		suite.Run(t)
	})

	t.Run("keeps voids apart by key", func(t *testing.T) {
		first := NewStore(base.db, TableName(base.table), createKey())
		second := NewStore(base.db, TableName(base.table), createKey())

		if !assert.Nil(t, first.Save(ctx, 3)) {
			return
		}

		_, found, err := second.Load(ctx)
		assert.Nil(t, err)
		assert.False(t, found)
	})

	t.Run("ensuring an existing table is a no-op", func(t *testing.T) {
		assert.Nil(t, EnsureTable(ctx, base.db, TableName(base.table)))
	})

	t.Run("reports a missing table", func(t *testing.T) {
		store := NewStore(base.db, TableName("missing"), createKey())

		_, _, err := store.Load(ctx)
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "ResourceNotFoundException")
	})

	t.Run("rejects a count that is not a number", func(t *testing.T) {
		store := NewStore(base.db, TableName(base.table), createKey())
		key := store.itemKey()

		_, err := base.db.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(base.table),
			Item: map[string]types.AttributeValue{
				"pk":    &types.AttributeValueMemberS{Value: key.PartitionKey},
				"sk":    &types.AttributeValueMemberS{Value: key.SortKey},
				"count": &types.AttributeValueMemberS{Value: "abc"},
			},
		})
		if !assert.Nil(t, err) {
			return
		}

		_, _, err = store.Load(ctx)
		assert.True(t, void.IsParseError(err))
	})
}
