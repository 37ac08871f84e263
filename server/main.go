package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	log "github.com/sirupsen/logrus"

	"github.com/weegigs/wee-void/connectors/vhttp"
	"github.com/weegigs/wee-void/shutdown"
	"github.com/weegigs/wee-void/stores"
	"github.com/weegigs/wee-void/support"
	"github.com/weegigs/wee-void/void"
)

// run serves the void until coordinator is asked to stop. The count is
// restored before the listener opens and saved exactly once after the
// server has stopped; a failed save is returned. When listening is not nil
// it receives the bound address.
func run(ctx context.Context, cfg support.Config, coordinator *shutdown.Coordinator, listening chan<- net.Addr) (err error) {
	flush, err := support.Tracing(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := flush(context.Background()); err != nil {
			log.WithError(err).Warn("failed to flush traces")
		}
	}()

	store, cleanup, err := stores.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	counter, err := void.Restore(ctx, store)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"store": cfg.Store, "count": counter.Query()}).Info("void restored")

	defer func() {
		if !cfg.Persistent() {
			return
		}

		if perr := void.Persist(context.Background(), store, counter); perr != nil {
			log.WithError(perr).Error("failed to save void")
			if err == nil {
				err = perr
			}
			return
		}

		log.WithField("count", counter.Query()).Info("void saved")
	}()

	handler := vhttp.NewHandler(counter, vhttp.Fallback(http.FileServer(http.Dir(cfg.Static))))
	server := vhttp.NewServer(cfg.Address(), vhttp.WithTelemetry(withLogging(handler), "wee-void"))

	addr, err := server.Listen()
	if err != nil {
		return err
	}
	if listening != nil {
		listening <- addr
	}

	stopped := make(chan error, 1)
	go func() {
		stopped <- coordinator.Run(server)
	}()

	serveErr := server.Serve()

	// the loop can also end without a signal, e.g. when accept fails
	coordinator.Request()
	stopErr := <-stopped

	if serveErr != nil {
		return serveErr
	}

	return stopErr
}

func configureLogging(cfg support.Config) {
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if zl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(zl)
	}
}

func main() {
	cfg, err := support.ParseConfig(flag.CommandLine, os.Args[1:], support.Serving, nil)
	if err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}
	configureLogging(cfg)

	coordinator := shutdown.NewCoordinator(shutdown.GracePeriod(cfg.Grace))
	stop := shutdown.Notify(coordinator, os.Interrupt, syscall.SIGTERM)

	err = run(context.Background(), cfg, coordinator, nil)
	stop()
	if err != nil {
		log.Fatalf("void: %+v", err)
	}
}
