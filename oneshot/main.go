package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-void/connectors/vcgi"
	"github.com/weegigs/wee-void/stores"
	"github.com/weegigs/wee-void/support"
	"github.com/weegigs/wee-void/void"
)

// run answers the single request described by the CGI environment. The void
// is restored first and saved once the response has been written. A failed
// request leaves the store untouched.
func run(ctx context.Context, cfg support.Config) (err error) {
	store, cleanup, err := stores.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	counter, err := void.Restore(ctx, store)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			return
		}
		err = void.Persist(context.Background(), store, counter)
	}()

	return vcgi.Serve(counter)
}

func main() {
	// stdout carries the response
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := support.ParseConfig(flag.CommandLine, os.Args[1:], support.OneShot, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("one-shot request failed")
	}
}
