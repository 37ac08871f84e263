package void

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("increment returns the new count", func(t *testing.T) {
		v := New(41)

		response, err := Dispatch(ctx, Increment, v)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, http.StatusOK, response.Status())
		assert.Equal(t, "42", response.Body())
		assert.Equal(t, "text/html; charset=utf-8", response.ContentType())
		assert.Equal(t, uint64(42), v.Query())
	})

	t.Run("query returns the current count", func(t *testing.T) {
		v := New(3)

		response, err := Dispatch(ctx, Query, v)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, http.StatusOK, response.Status())
		assert.Equal(t, "3", response.Body())
		assert.Equal(t, uint64(3), v.Query())
	})

	t.Run("unknown request fails with a trace", func(t *testing.T) {
		v := New(0)

		_, err := Dispatch(ctx, Request(99), v)

		var unknown UnknownRequestError
		if !assert.True(t, errors.As(err, &unknown)) {
			return
		}
		assert.Equal(t, Request(99), unknown.Request)
		assert.Contains(t, fmt.Sprintf("%+v", err), "dispatcher.go")
		assert.Equal(t, uint64(0), v.Query())
	})
}
