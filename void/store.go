package void

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

// Store keeps the count between process lifetimes.
type Store interface {
	// Load returns the saved count. found is false, with a nil error, when
	// nothing has been saved yet.
	Load(ctx context.Context) (value uint64, found bool, err error)
	Save(ctx context.Context, value uint64) error
}

// AtomicStore is a Store that can increment the saved count in place. It
// serves processes that do not own the count, where a load followed by a
// save would lose concurrent increments.
type AtomicStore interface {
	Store
	// Increment adds one to the saved count, treating a missing count as 0,
	// and returns the new value.
	Increment(ctx context.Context) (uint64, error)
}

// Restore creates a Void from the state held by store. A nil store disables
// persistence and the void starts empty.
func Restore(ctx context.Context, store Store) (*Void, error) {
	if store == nil {
		return New(0), nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "restore void")
	defer span.End()

	value, _, err := store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to restore void")
	}

	return New(value), nil
}

// Persist saves the current count of v to store. It is a no-op for a nil
// store.
func Persist(ctx context.Context, store Store, v *Void) error {
	if store == nil {
		return nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "persist void")
	defer span.End()

	if err := store.Save(ctx, v.Query()); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to persist void")
	}

	return nil
}
