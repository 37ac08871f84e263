package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weegigs/wee-void/void"
)

type test = func(t *testing.T)

func tempStore(t *testing.T, name string) *Store {
	store, err := NewStore(Path(filepath.Join(t.TempDir(), name)))
	if err != nil {
		t.Fatalf("failed to create store: %+v", err)
	}

	return store
}

func write(t *testing.T, store *Store, content string) {
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed %s: %v", store.Path(), err)
	}
}

func read(t *testing.T, store *Store) string {
	content, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read %s: %v", store.Path(), err)
	}

	return string(content)
}

func rejectsContent(content string) test {
	return func(t *testing.T) {
		store := tempStore(t, "void")
		write(t, store, content)

		_, _, err := store.Load(context.Background())
		assert.True(t, void.IsParseError(err), "expected a parse error, got %v", err)

		_, err = void.Restore(context.Background(), store)
		assert.True(t, void.IsParseError(err), "expected startup to abort, got %v", err)
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("file store validation", func(t *testing.T) {
		suite := void.NewStoreValidationSuite(ctx, func(t *testing.T) void.Store {
			return tempStore(t, "void")
		})
		suite.Run(t)
	})

	t.Run("missing file restores an empty void", func(t *testing.T) {
		v, err := void.Restore(ctx, tempStore(t, "missing"))
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, uint64(0), v.Query())
	})

	t.Run("writes plain decimal text", func(t *testing.T) {
		store := tempStore(t, "void")
		if !assert.Nil(t, store.Save(ctx, 42)) {
			return
		}

		assert.Equal(t, "42", read(t, store))
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		store := tempStore(t, filepath.Join("a", "b", "void"))
		if !assert.Nil(t, store.Save(ctx, 1)) {
			return
		}

		assert.Equal(t, "1", read(t, store))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		store := tempStore(t, "void")
		assert.Nil(t, store.Save(ctx, 1))
		assert.Nil(t, store.Save(ctx, 2))

		entries, err := os.ReadDir(filepath.Dir(store.Path()))
		if !assert.Nil(t, err) {
			return
		}

		assert.Len(t, entries, 1)
	})

	t.Run("restores 41 and saves 42", func(t *testing.T) {
		store := tempStore(t, "void")
		write(t, store, "41")

		v, err := void.Restore(ctx, store)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, uint64(42), v.Increment())
		assert.Equal(t, uint64(42), v.Query())
		assert.Nil(t, void.Persist(ctx, store, v))
		assert.Equal(t, "42", read(t, store))
	})

	t.Run("accepts a trailing newline", func(t *testing.T) {
		store := tempStore(t, "void")
		write(t, store, "41\n")

		value, found, err := store.Load(ctx)
		assert.Nil(t, err)
		assert.True(t, found)
		assert.Equal(t, uint64(41), value)
	})

	t.Run("rejects malformed content", rejectsContent("abc"))
	t.Run("rejects negative content", rejectsContent("-3"))
	t.Run("rejects empty content", rejectsContent(""))

	t.Run("fails to load a directory", func(t *testing.T) {
		store := tempStore(t, "void")
		if err := os.Mkdir(store.Path(), 0o755); err != nil {
			t.Fatal(err)
		}

		_, _, err := store.Load(ctx)
		assert.NotNil(t, err)
		assert.False(t, void.IsParseError(err))
	})

	t.Run("reports failed saves", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		store, err := NewStore(Path(filepath.Join(blocker, "void")))
		if !assert.Nil(t, err) {
			return
		}

		assert.NotNil(t, store.Save(ctx, 1))
		assert.NotNil(t, void.Persist(ctx, store, void.New(1)))
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		_, err := NewStore("")
		assert.NotNil(t, err)
	})
}
