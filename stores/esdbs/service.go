package esdbs

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-void/void"
)

var Live = wire.NewSet(
	Connect,
	NewStore,
	wire.Bind(new(void.Store), new(*Store)),
)
