package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

// Notify turns delivery of any of signals into a shutdown request on c. The
// returned function stops the forwarding; it is safe to call more than once.
func Notify(c *Coordinator, signals ...os.Signal) func() {
	received := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(received, signals...)

	go func() {
		for {
			select {
			case sig := <-received:
				c.log.Info().Str("signal", sig.String()).Msg("signal received, exiting")
				c.Request()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(received)
			close(done)
		})
	}
}
