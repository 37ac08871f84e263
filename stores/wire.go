//go:build wireinject
// +build wireinject

package stores

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/wee-void/stores/dynamo"
	"github.com/weegigs/wee-void/stores/esdbs"
	"github.com/weegigs/wee-void/stores/file"
	"github.com/weegigs/wee-void/stores/jetstream"
	"github.com/weegigs/wee-void/support"
	"github.com/weegigs/wee-void/void"
)

func fileStore(path file.Path) (void.Store, error) {
	panic(wire.Build(file.Live))
}

func dynamoStore(ctx context.Context, table dynamo.TableName, key dynamo.Key) (void.Store, error) {
	panic(wire.Build(support.AWSConfig, dynamo.Live))
}

func jetstreamStore(url jetstream.URL, bucket jetstream.Bucket, key jetstream.Key) (void.Store, func(), error) {
	panic(wire.Build(jetstream.Live))
}

func esdbStore(connection esdbs.ConnectionString, stream esdbs.StreamName) (void.Store, func(), error) {
	panic(wire.Build(esdbs.Live))
}
