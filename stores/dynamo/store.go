package dynamo

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-void/void"
)

type TableName string

func (name TableName) String() string {
	return string(name)
}

// Key names the void within the table.
type Key string

const DefaultKey = Key("void")

type Store struct {
	db    *dynamodb.Client
	table string
	key   string
}

func NewStore(db *dynamodb.Client, table TableName, key Key) *Store {
	if key == "" {
		key = DefaultKey
	}

	return &Store{db: db, table: string(table), key: string(key)}
}

type record struct {
	PartitionKey string `dynamodbav:"pk"`
	SortKey      string `dynamodbav:"sk"`
	Count        uint64 `dynamodbav:"count"`
	Timestamp    string `dynamodbav:"timestamp"`
}

type itemKey struct {
	PartitionKey string `dynamodbav:"pk"`
	SortKey      string `dynamodbav:"sk"`
}

func (s *Store) itemKey() itemKey {
	return itemKey{
		PartitionKey: strings.Join([]string{"void#", s.key}, ""),
		SortKey:      "count",
	}
}

func (s *Store) Load(ctx context.Context) (uint64, bool, error) {
	key, err := attributevalue.MarshalMap(s.itemKey())
	if err != nil {
		return 0, false, err
	}

	projection := expression.NamesList(expression.Name("count"))
	expr, err := expression.NewBuilder().WithProjection(projection).Build()
	if err != nil {
		return 0, false, err
	}

	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(s.table),
		Key:                      key,
		ConsistentRead:           aws.Bool(true),
		ExpressionAttributeNames: expr.Names(),
		ProjectionExpression:     expr.Projection(),
	})
	if err != nil {
		return 0, false, describe(err, "failed to load void")
	}

	if len(out.Item) == 0 {
		return 0, false, nil
	}

	value, err := count(out.Item)
	if err != nil {
		return 0, false, err
	}

	return value, true, nil
}

// count reads the count attribute as text so that malformed values surface
// as parse errors.
func count(item map[string]types.AttributeValue) (uint64, error) {
	attribute, ok := item["count"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, void.InvalidInput(void.PersistedInput, "", "count is not a number")
	}

	return void.ParseValue(attribute.Value)
}

func (s *Store) Save(ctx context.Context, value uint64) error {
	key := s.itemKey()
	item, err := attributevalue.MarshalMap(record{
		PartitionKey: key.PartitionKey,
		SortKey:      key.SortKey,
		Count:        value,
		Timestamp:    timestamp(),
	})
	if err != nil {
		return err
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return describe(err, "failed to save void")
	}

	return nil
}

// Increment adds one to the count with a single update, so concurrent
// callers never overwrite each other.
func (s *Store) Increment(ctx context.Context) (uint64, error) {
	key, err := attributevalue.MarshalMap(s.itemKey())
	if err != nil {
		return 0, err
	}

	update := expression.
		Add(expression.Name("count"), expression.Value(1)).
		Set(expression.Name("timestamp"), expression.Value(timestamp()))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return 0, err
	}

	out, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       key,
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, describe(err, "failed to increment void")
	}

	return count(out.Attributes)
}

const RFC3339Milli = "2006-01-02T15:04:05.999Z07:00"

func timestamp() string {
	return time.Now().UTC().Format(RFC3339Milli)
}

func describe(err error, message string) error {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return errors.Wrapf(err, "%s: %s", message, ae.ErrorCode())
	}

	return errors.Wrap(err, message)
}
