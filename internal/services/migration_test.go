package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/internal/adapters/storage"
	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
)

// homes maps home paths to in-memory stores that survive Close
func homes(paths ...string) (map[string]*storage.MemoryStore, StoreFactory) {
	stores := map[string]*storage.MemoryStore{}
	for _, p := range paths {
		stores[p] = storage.NewMemoryStore()
	}
	factory := func(home string) (ports.CollectionStore, error) {
		s, ok := stores[home]
		if !ok {
			return nil, errors.New("no such home")
		}
		return s, nil
	}
	return stores, factory
}

func TestMoveBetweenHomes_MovesEveryCollection(t *testing.T) {
	ctx := context.Background()
	stores, factory := homes("/a", "/b")
	require.NoError(t, stores["/a"].Put(ctx, domain.CollectionApps, []byte(`[]`), 1))
	require.NoError(t, stores["/a"].Put(ctx, domain.CollectionMainTodos, []byte(`[{"id":"m-1","text":"x","completed":false}]`), 1))

	res, err := NewMigrationService(factory).MoveBetweenHomes(ctx, MoveBetweenHomesParams{SourceHome: "/a", DestHome: "/b"})

	require.NoError(t, err)
	assert.Equal(t, []string{"apps", "mainTodos"}, res.Moved)
	assert.Equal(t, []string{"shortsIdeas"}, res.Skipped)

	data, version, err := stores["/b"].Get(ctx, domain.CollectionMainTodos)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.JSONEq(t, `[{"id":"m-1","text":"x","completed":false}]`, string(data))

	left, _ := stores["/a"].Keys(ctx)
	assert.Empty(t, left)
}

func TestMoveBetweenHomes_KeepSourceAndOverwrite(t *testing.T) {
	ctx := context.Background()
	stores, factory := homes("/a", "/b")
	require.NoError(t, stores["/a"].Put(ctx, domain.CollectionIdeas, []byte(`["new"]`), 1))
	require.NoError(t, stores["/b"].Put(ctx, domain.CollectionIdeas, []byte(`["old"]`), 1))
	svc := NewMigrationService(factory)

	res, err := svc.MoveBetweenHomes(ctx, MoveBetweenHomesParams{SourceHome: "/a", DestHome: "/b", Keys: []string{domain.CollectionIdeas}, KeepSource: true})
	require.NoError(t, err)
	assert.Empty(t, res.Moved)
	assert.Equal(t, []string{"shortsIdeas"}, res.Skipped)

	res, err = svc.MoveBetweenHomes(ctx, MoveBetweenHomesParams{SourceHome: "/a", DestHome: "/b", Keys: []string{domain.CollectionIdeas}, KeepSource: true, Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"shortsIdeas"}, res.Moved)

	data, _, _ := stores["/b"].Get(ctx, domain.CollectionIdeas)
	assert.Equal(t, `["new"]`, string(data))
	_, _, err = stores["/a"].Get(ctx, domain.CollectionIdeas)
	assert.NoError(t, err, "source kept")
}

func TestMoveBetweenHomes_Errors(t *testing.T) {
	_, factory := homes("/a", "/b")
	svc := NewMigrationService(factory)
	ctx := context.Background()

	_, err := svc.MoveBetweenHomes(ctx, MoveBetweenHomesParams{SourceHome: "/a", DestHome: "/a"})
	assert.Error(t, err)

	_, err = svc.MoveBetweenHomes(ctx, MoveBetweenHomesParams{SourceHome: "/a", DestHome: "/b", Keys: []string{"sessions"}})
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	_, err = svc.MoveBetweenHomes(ctx, MoveBetweenHomesParams{SourceHome: "/missing", DestHome: "/b"})
	assert.ErrorContains(t, err, "failed to open source database")
}
