package jetstream

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-void/void"
)

// Bucket is the key/value bucket holding the count.
type Bucket string

const DefaultBucket = Bucket("void")

type Key string

const DefaultKey = Key("count")

// Store keeps the count as decimal text in a JetStream key/value bucket.
type Store struct {
	kv  nats.KeyValue
	key string
}

func NewStore(connection *nats.Conn, bucket Bucket, key Key) (*Store, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}

	if key == "" {
		key = DefaultKey
	}

	stream, err := connection.JetStream()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open jetstream context")
	}

	kv, err := stream.KeyValue(string(bucket))
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = stream.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:      string(bucket),
			Description: "scream count for " + string(bucket),
			History:     1,
		})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucket)
	}

	return &Store{kv: kv, key: string(key)}, nil
}

func (s *Store) Load(_ context.Context) (uint64, bool, error) {
	entry, err := s.kv.Get(s.key)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return 0, false, nil
		}

		return 0, false, errors.Wrapf(err, "failed to get %s", s.key)
	}

	value, err := void.ParseValue(string(entry.Value()))
	if err != nil {
		return 0, false, err
	}

	return value, true, nil
}

func (s *Store) Save(_ context.Context, value uint64) error {
	if _, err := s.kv.PutString(s.key, void.FormatValue(value)); err != nil {
		return errors.Wrapf(err, "failed to put %s", s.key)
	}

	return nil
}
