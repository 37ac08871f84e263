package vlambda

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// memoryStore stands in for a shared table. delay widens the gap between
// reading and writing so lost updates show up.
type memoryStore struct {
	lk     sync.Mutex
	value  *uint64
	writes int
	delay  time.Duration
	fail   error
}

func (s *memoryStore) Load(_ context.Context) (uint64, bool, error) {
	time.Sleep(s.delay)

	s.lk.Lock()
	defer s.lk.Unlock()

	if s.value == nil {
		return 0, false, nil
	}

	return *s.value, true, nil
}

func (s *memoryStore) Save(_ context.Context, value uint64) error {
	s.lk.Lock()
	defer s.lk.Unlock()

	if s.fail != nil {
		return s.fail
	}

	s.writes++
	s.value = &value
	return nil
}

func (s *memoryStore) Increment(_ context.Context) (uint64, error) {
	time.Sleep(s.delay)

	s.lk.Lock()
	defer s.lk.Unlock()

	if s.fail != nil {
		return 0, s.fail
	}

	var value uint64
	if s.value != nil {
		value = *s.value
	}
	value++

	s.writes++
	s.value = &value
	return value, nil
}

func (s *memoryStore) stored() uint64 {
	s.lk.Lock()
	defer s.lk.Unlock()

	if s.value == nil {
		return 0
	}

	return *s.value
}

func invoke(handler GatewayHandler, what string) (events.APIGatewayV2HTTPResponse, error) {
	return handler(context.Background(), events.APIGatewayV2HTTPRequest{
		QueryStringParameters: map[string]string{"what": what},
	})
}

func TestHandler(t *testing.T) {
	t.Run("screams are stored", func(t *testing.T) {
		store := &memoryStore{}
		handler := NewHandler(store)

		response, err := invoke(handler, "scream")
		if !assert.Nil(t, err) {
			return
		}
		assert.Equal(t, 200, response.StatusCode)
		assert.Equal(t, "1", response.Body)
		assert.Equal(t, "text/html; charset=utf-8", response.Headers["Content-Type"])

		response, err = invoke(handler, "scream")
		assert.Nil(t, err)
		assert.Equal(t, "2", response.Body)
		assert.Equal(t, 2, store.writes)
		assert.Equal(t, uint64(2), store.stored())
	})

	t.Run("queries do not write", func(t *testing.T) {
		value := uint64(41)
		store := &memoryStore{value: &value}

		response, err := invoke(NewHandler(store), "screams")
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, "41", response.Body)
		assert.Equal(t, 0, store.writes)
	})

	t.Run("concurrent screams all count", func(t *testing.T) {
		const screams = 10
		store := &memoryStore{delay: 5 * time.Millisecond}
		handler := NewHandler(store)

		var wg sync.WaitGroup
		bodies := make(chan string, screams)
		failures := make(chan error, screams)
		for i := 0; i < screams; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				response, err := invoke(handler, "scream")
				if err != nil {
					failures <- err
					return
				}
				bodies <- response.Body
			}()
		}
		wg.Wait()
		close(bodies)
		close(failures)

		for err := range failures {
			assert.Nil(t, err)
		}

		var seen []string
		for body := range bodies {
			seen = append(seen, body)
		}
		sort.Strings(seen)

		assert.Equal(t, []string{"1", "10", "2", "3", "4", "5", "6", "7", "8", "9"}, seen)
		assert.Equal(t, uint64(screams), store.stored())
	})

	t.Run("unknown selectors are bad requests", func(t *testing.T) {
		response, err := invoke(NewHandler(&memoryStore{}), "shout")
		assert.Nil(t, err)
		assert.Equal(t, 400, response.StatusCode)
	})

	t.Run("failed writes fail the invocation", func(t *testing.T) {
		disk := errors.New("throughput exceeded")

		_, err := invoke(NewHandler(&memoryStore{fail: disk}), "scream")
		assert.ErrorIs(t, err, disk)
	})
}
