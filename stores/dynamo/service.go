package dynamo

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-void/void"
)

var Live = wire.NewSet(
	Client,
	NewStore,
	wire.Bind(new(void.Store), new(*Store)),
	wire.Bind(new(void.AtomicStore), new(*Store)),
)
