package shutdown

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type State int

const (
	Running State = iota
	ShutdownRequested
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShutdownRequested:
		return "shutdown requested"
	case Stopped:
		return "stopped"
	}

	return "unknown"
}

// Stopper is the graceful stop of a serving loop: refuse new work, let the
// work in flight finish, or give up when ctx is done.
type Stopper interface {
	Stop(ctx context.Context) error
}

type StopperFunc func(ctx context.Context) error

func (f StopperFunc) Stop(ctx context.Context) error {
	return f(ctx)
}

const DefaultGracePeriod = 10 * time.Second

type Option func(*Coordinator)

// GracePeriod bounds how long Run waits for the stopper.
func GracePeriod(grace time.Duration) Option {
	return func(c *Coordinator) {
		if grace > 0 {
			c.grace = grace
		}
	}
}

func Logger(log *zerolog.Logger) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

// Coordinator moves a process from Running through ShutdownRequested to
// Stopped. Requests may come from any goroutine; a single waiter performs
// the stop.
type Coordinator struct {
	lk    sync.Mutex
	cond  *sync.Cond
	state State
	grace time.Duration
	log   *zerolog.Logger
}

func NewCoordinator(options ...Option) *Coordinator {
	c := &Coordinator{state: Running, grace: DefaultGracePeriod}
	c.cond = sync.NewCond(&c.lk)

	for _, option := range options {
		option(c)
	}
	if c.log == nil {
		c.log = &log.Logger
	}

	return c
}

func (c *Coordinator) State() State {
	c.lk.Lock()
	defer c.lk.Unlock()

	return c.state
}

// Request asks for shutdown. It reports whether this call was the one that
// left Running; later calls are no-ops.
func (c *Coordinator) Request() bool {
	c.lk.Lock()
	defer c.lk.Unlock()

	if c.state != Running {
		return false
	}

	c.state = ShutdownRequested
	c.cond.Broadcast()

	return true
}

// Run blocks until shutdown is requested, stops stopper within the grace
// period and marks the coordinator Stopped. The stop error, if any, is
// returned after the transition.
func (c *Coordinator) Run(stopper Stopper) error {
	c.lk.Lock()
	for c.state == Running {
		c.cond.Wait()
	}
	c.lk.Unlock()

	c.log.Info().Dur("grace", c.grace).Msg("stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), c.grace)
	defer cancel()

	err := stopper.Stop(ctx)
	if err != nil {
		err = errors.Wrap(err, "server did not stop gracefully")
		c.log.Error().Err(err).Msg("forced shutdown")
	}

	c.lk.Lock()
	c.state = Stopped
	c.cond.Broadcast()
	c.lk.Unlock()

	return err
}

// Wait blocks until Run has completed the stop.
func (c *Coordinator) Wait() {
	c.lk.Lock()
	defer c.lk.Unlock()

	for c.state != Stopped {
		c.cond.Wait()
	}
}
