package stores

import (
	"context"

	"github.com/pkg/errors"

	"github.com/weegigs/wee-void/stores/dynamo"
	"github.com/weegigs/wee-void/stores/esdbs"
	"github.com/weegigs/wee-void/stores/file"
	"github.com/weegigs/wee-void/stores/jetstream"
	"github.com/weegigs/wee-void/support"
	"github.com/weegigs/wee-void/void"
)

func noCleanup() {}

// Open returns the store selected by cfg and a function releasing its
// connection. A nil store, with no error, means the void is not persisted.
func Open(ctx context.Context, cfg support.Config) (void.Store, func(), error) {
	switch cfg.Store {
	case "file":
		if cfg.Void == "" {
			return nil, noCleanup, nil
		}

		store, err := fileStore(file.Path(cfg.Void))
		if err != nil {
			return nil, nil, err
		}
		return store, noCleanup, nil

	case "dynamo":
		if cfg.DynamoEndpoint != "" {
			store, err := dynamo.LocalStore(ctx, cfg.DynamoEndpoint, dynamo.TableName(cfg.DynamoTable), dynamo.Key(cfg.Key))
			if err != nil {
				return nil, nil, err
			}
			return store, noCleanup, nil
		}

		store, err := dynamoStore(ctx, dynamo.TableName(cfg.DynamoTable), dynamo.Key(cfg.Key))
		if err != nil {
			return nil, nil, err
		}
		return store, noCleanup, nil

	case "jetstream":
		return jetstreamStore(jetstream.URL(cfg.NatsURL), jetstream.DefaultBucket, jetstream.Key(cfg.Key))

	case "esdb":
		return esdbStore(esdbs.ConnectionString(cfg.ESDB), esdbs.StreamName(cfg.Key))
	}

	return nil, nil, errors.Errorf("unknown store %q", cfg.Store)
}
