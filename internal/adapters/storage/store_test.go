package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func stores(t *testing.T) map[string]ports.CollectionStore {
	return map[string]ports.CollectionStore{
		"sqlite": newSQLiteStore(t),
		"memory": NewMemoryStore(),
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, _, err := store.Get(context.Background(), domain.CollectionApps)
			assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
		})
	}
}

func TestStore_PutThenGet(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, domain.CollectionMainTodos, []byte(`[{"id":"m-1"}]`), 1))

			data, version, err := store.Get(ctx, domain.CollectionMainTodos)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"m-1"}]`, string(data))
			assert.Equal(t, 1, version)
		})
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, domain.CollectionIdeas, []byte(`[]`), 1))
			require.NoError(t, store.Put(ctx, domain.CollectionIdeas, []byte(`[{"id":"s-1"}]`), 2))

			data, version, err := store.Get(ctx, domain.CollectionIdeas)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"s-1"}]`, string(data))
			assert.Equal(t, 2, version)

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{domain.CollectionIdeas}, keys)
		})
	}
}

func TestStore_KeysSorted(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, key := range []string{domain.CollectionIdeas, domain.CollectionApps, domain.CollectionMainTodos} {
				require.NoError(t, store.Put(ctx, key, []byte(`[]`), domain.SchemaVersion))
			}

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"apps", "mainTodos", "shortsIdeas"}, keys)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, domain.CollectionApps, []byte(`[]`), 1))

			require.NoError(t, store.Delete(ctx, domain.CollectionApps))
			assert.ErrorIs(t, store.Delete(ctx, domain.CollectionApps), domain.ErrCollectionNotFound)

			_, _, err := store.Get(ctx, domain.CollectionApps)
			assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
		})
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, domain.CollectionApps, []byte(`[{"id":"1"}]`), 1))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, _, err := reopened.Get(ctx, domain.CollectionApps)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "k", []byte("abc"), 1))

	data, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	data[0] = 'z'

	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestWithRetry(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("keeps the last busy error", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return busy
		}, 2)

		assert.Equal(t, 2, calls)
		require.Error(t, err)
		assert.ErrorContains(t, err, "after 2 retries")
		var sqliteErr sqlite3.Error
		require.ErrorAs(t, err, &sqliteErr)
		assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
	})

	t.Run("recovers after busy", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls == 1 {
				return busy
			}
			return nil
		}, 3)

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return errors.New("disk full")
		}, 3)

		assert.EqualError(t, err, "disk full")
		assert.Equal(t, 1, calls)
	})
}
