package file

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-void/void"
)

var Live = wire.NewSet(
	NewStore,
	wire.Bind(new(void.Store), new(*Store)),
)
