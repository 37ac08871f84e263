//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/wee-void/connectors/vlambda"
)

func live(ctx context.Context) (vlambda.GatewayHandler, error) {
	panic(wire.Build(Live))
}
