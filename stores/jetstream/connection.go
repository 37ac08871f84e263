package jetstream

import (
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type URL string

// Connect dials the NATS server at url. The returned cleanup drains the
// connection.
func Connect(url URL) (*nats.Conn, func(), error) {
	connection, err := nats.Connect(string(url), nats.Name("wee-void"))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to connect to %s", url)
	}

	return connection, func() {
		if err := connection.Drain(); err != nil {
			log.Err(err).Msg("nats connection failed to drain cleanly")
		}
	}, nil
}
