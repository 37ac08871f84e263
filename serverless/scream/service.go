package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/google/wire"

	"github.com/weegigs/wee-void/connectors/vlambda"
	"github.com/weegigs/wee-void/stores/dynamo"
	"github.com/weegigs/wee-void/support"
)

type settings struct {
	Table string `env:"VOID_DYNAMODB_TABLE,required,notEmpty"`
	Key   string `env:"VOID_KEY" envDefault:"void"`
}

func loadSettings() (settings, error) {
	return env.ParseAs[settings]()
}

func tableName(s settings) dynamo.TableName {
	return dynamo.TableName(s.Table)
}

func key(s settings) dynamo.Key {
	return dynamo.Key(s.Key)
}

var Live = wire.NewSet(
	loadSettings,
	tableName,
	key,
	support.AWSConfig,
	dynamo.Live,
	vlambda.NewHandler,
)
