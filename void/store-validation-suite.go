package void

import (
	"context"
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
)

// StoreValidationSuite checks the behaviour every Store must share. Each
// check is handed a fresh store from the factory.
type StoreValidationSuite struct {
	ctx   context.Context
	store func(t *testing.T) Store
	faker faker.Faker
}

func NewStoreValidationSuite(ctx context.Context, store func(t *testing.T) Store) *StoreValidationSuite {
	return &StoreValidationSuite{
		ctx:   ctx,
		store: store,
		faker: faker.New(),
	}
}

func (s *StoreValidationSuite) Run(t *testing.T) {
	t.Run("loads nothing before the first save", s.LoadsNothingInitially)
	t.Run("round trips a saved count", s.RoundTrips)
	t.Run("round trips random counts", s.RoundTripsRandomCounts)
	t.Run("round trips the boundaries", s.RoundTripsBoundaries)
	t.Run("overwrites the previous count", s.Overwrites)
	t.Run("restores a void from the store", s.RestoresVoid)
	t.Run("increments in place", s.IncrementsInPlace)
	t.Run("increments concurrently", s.IncrementsConcurrently)
}

func (s *StoreValidationSuite) LoadsNothingInitially(t *testing.T) {
	store := s.store(t)

	value, found, err := store.Load(s.ctx)
	if !assert.Nil(t, err) {
		return
	}

	assert.False(t, found)
	assert.Equal(t, uint64(0), value)
}

func (s *StoreValidationSuite) roundTrip(t *testing.T, store Store, value uint64) {
	if !assert.Nil(t, store.Save(s.ctx, value)) {
		return
	}

	loaded, found, err := store.Load(s.ctx)
	if !assert.Nil(t, err) {
		return
	}

	assert.True(t, found)
	assert.Equal(t, value, loaded)
}

func (s *StoreValidationSuite) RoundTrips(t *testing.T) {
	s.roundTrip(t, s.store(t), 42)
}

func (s *StoreValidationSuite) RoundTripsRandomCounts(t *testing.T) {
	store := s.store(t)
	for i := 0; i < 17; i++ {
		s.roundTrip(t, store, s.faker.UInt64())
	}
}

func (s *StoreValidationSuite) RoundTripsBoundaries(t *testing.T) {
	store := s.store(t)
	s.roundTrip(t, store, 0)
	s.roundTrip(t, store, math.MaxUint64)
}

func (s *StoreValidationSuite) Overwrites(t *testing.T) {
	store := s.store(t)
	if !assert.Nil(t, store.Save(s.ctx, 7)) {
		return
	}

	s.roundTrip(t, store, 8)
}

func (s *StoreValidationSuite) RestoresVoid(t *testing.T) {
	store := s.store(t)
	if !assert.Nil(t, store.Save(s.ctx, 41)) {
		return
	}

	v, err := Restore(s.ctx, store)
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, uint64(42), v.Increment())
	if !assert.Nil(t, Persist(s.ctx, store, v)) {
		return
	}

	value, _, err := store.Load(s.ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint64(42), value)
}

func (s *StoreValidationSuite) atomic(t *testing.T) AtomicStore {
	store, ok := s.store(t).(AtomicStore)
	if !ok {
		t.Skip("store does not increment in place")
	}

	return store
}

func (s *StoreValidationSuite) IncrementsInPlace(t *testing.T) {
	store := s.atomic(t)

	value, err := store.Increment(s.ctx)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, uint64(1), value)

	if !assert.Nil(t, store.Save(s.ctx, 41)) {
		return
	}

	value, err = store.Increment(s.ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint64(42), value)

	loaded, _, err := store.Load(s.ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint64(42), loaded)
}

func (s *StoreValidationSuite) IncrementsConcurrently(t *testing.T) {
	store := s.atomic(t)
	const screams = 10

	var wg sync.WaitGroup
	results := make(chan uint64, screams)
	failures := make(chan error, screams)
	for i := 0; i < screams; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.Increment(s.ctx)
			if err != nil {
				failures <- err
				return
			}
			results <- value
		}()
	}
	wg.Wait()
	close(results)
	close(failures)

	for err := range failures {
		assert.Nil(t, err)
	}

	var values []uint64
	for value := range results {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	expected := make([]uint64, 0, screams)
	for i := uint64(1); i <= screams; i++ {
		expected = append(expected, i)
	}
	assert.Equal(t, expected, values)

	loaded, _, err := store.Load(s.ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint64(screams), loaded)
}
