package session_test

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestMemoryStore_Save(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("allocates hex id", func(t *testing.T) {
		store := session.NewMemoryStore()
		data := session.NewData()
		data.Set("cart", []string{})

		id, err := store.Save(ctx, "", data)
		require.NoError(t, err)
		assert.Regexp(t, hexID, id)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("ids are unique", func(t *testing.T) {
		store := session.NewMemoryStore()
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			id, err := store.Save(ctx, "", session.NewData())
			require.NoError(t, err)
			require.Regexp(t, hexID, id)
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, 1000)
		assert.Equal(t, 1000, store.Len())
	})

	t.Run("existing id is overwritten", func(t *testing.T) {
		store := session.NewMemoryStore()

		data1 := session.NewData()
		data1.Set("v", 1)
		id, err := store.Save(ctx, "", data1)
		require.NoError(t, err)

		data2 := session.NewData()
		data2.Set("v", 2)
		sameID, err := store.Save(ctx, id, data2)
		require.NoError(t, err)
		assert.Equal(t, id, sameID)

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		v, _ := loaded.GetInt("v")
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("caller supplied id is accepted", func(t *testing.T) {
		store := session.NewMemoryStore()
		id, err := store.Save(ctx, "custom", session.NewData())
		require.NoError(t, err)
		assert.Equal(t, "custom", id)
	})

	t.Run("nil data stored as empty", func(t *testing.T) {
		store := session.NewMemoryStore()
		id, err := store.Save(ctx, "", nil)
		require.NoError(t, err)

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 0, loaded.Len())
	})
}

func TestMemoryStore_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing id is not an error", func(t *testing.T) {
		store := session.NewMemoryStore()
		data, err := store.Load(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, data)

		data, err = store.Load(ctx, "")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("data isolation", func(t *testing.T) {
		store := session.NewMemoryStore()
		data := session.NewData()
		data.Set("key", "value")

		id, err := store.Save(ctx, "", data)
		require.NoError(t, err)

		// Mutating the caller's copy after save must not leak into the store
		data.Set("key", "modified")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		val, _ := loaded.GetString("key")
		assert.Equal(t, "value", val)

		// Neither must mutating a loaded copy
		loaded.Set("key", "changed")
		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		val, _ = again.GetString("key")
		assert.Equal(t, "value", val)
	})

	t.Run("modified flag is kept as saved", func(t *testing.T) {
		store := session.NewMemoryStore()
		data := session.NewData()
		data.Set("k", 1)

		id, err := store.Save(ctx, "", data)
		require.NoError(t, err)
		assert.True(t, data.Modified())

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.True(t, loaded.Modified())
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewMemoryStore()

	data := session.NewData()
	data.Set("cart", []string{})
	id, err := store.Save(ctx, "", data)
	require.NoError(t, err)
	require.Len(t, id, 64)

	require.NoError(t, store.Delete(ctx, id))

	loaded, err := store.Load(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.Equal(t, 0, store.Len())

	assert.NoError(t, store.Delete(ctx, id), "deleting twice is fine")
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStore_Cleanup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewMemoryStore()

	_, err := store.Save(ctx, "", session.NewData())
	require.NoError(t, err)

	n, err := store.Cleanup(ctx)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewMemoryStore()

	shared, err := store.Save(ctx, "", session.NewData())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			data := session.NewData()
			data.Set("i", i)
			_, err := store.Save(ctx, shared, data)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			loaded, err := store.Load(ctx, shared)
			assert.NoError(t, err)
			assert.NotNil(t, loaded)
		}()
		go func() {
			defer wg.Done()
			id, err := store.Save(ctx, "", session.NewData())
			if assert.NoError(t, err) {
				assert.NoError(t, store.Delete(ctx, id))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	loaded, err := store.Load(ctx, shared)
	require.NoError(t, err)
	_, ok := loaded.GetInt("i")
	assert.True(t, ok)
}
