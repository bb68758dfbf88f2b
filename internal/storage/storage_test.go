package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("Get missing key", func(t *testing.T) {
		_, err := store.Get("cart")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Set then Get", func(t *testing.T) {
		require.NoError(t, store.Set("cart", []byte(`[{"_id":"p1"}]`)))

		got, err := store.Get("cart")
		require.NoError(t, err)
		assert.Equal(t, `[{"_id":"p1"}]`, string(got))
	})

	t.Run("Set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set("cart", []byte(`[]`)))

		got, err := store.Get("cart")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Set("adminToken", []byte("tok")))
		require.NoError(t, store.Remove("adminToken"))

		_, err := store.Get("adminToken")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Remove missing key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Remove("never-set"))
	})

	t.Run("Keys with unsafe characters", func(t *testing.T) {
		require.NoError(t, store.Set("weird/key name", []byte("v")))

		got, err := store.Get("weird/key name")
		require.NoError(t, err)
		assert.Equal(t, "v", string(got))
	})

	t.Run("Distinct keys never share a file", func(t *testing.T) {
		require.NoError(t, store.Set("a b", []byte("space")))
		require.NoError(t, store.Set("a:b", []byte("colon")))
		require.NoError(t, store.Set("a_b", []byte("underscore")))

		got, err := store.Get("a b")
		require.NoError(t, err)
		assert.Equal(t, "space", string(got))

		got, err = store.Get("a:b")
		require.NoError(t, err)
		assert.Equal(t, "colon", string(got))

		got, err = store.Get("a_b")
		require.NoError(t, err)
		assert.Equal(t, "underscore", string(got))
	})
}

func TestEncodeKey(t *testing.T) {
	// The fixed keys stay human-readable on disk.
	assert.Equal(t, "cart", encodeKey("cart"))
	assert.Equal(t, "adminToken", encodeKey("adminToken"))

	assert.Equal(t, "a_20b", encodeKey("a b"))
	assert.Equal(t, "a_3ab", encodeKey("a:b"))
	assert.Equal(t, "a_5fb", encodeKey("a_b"))
	assert.NotEqual(t, encodeKey("a b"), encodeKey("a:b"))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("cart", []byte(`[1,2,3]`)))

	second, err := NewFileStore(dir)
	require.NoError(t, err)

	got, err := second.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(got))

	// No temp files left behind after a completed write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
	assert.FileExists(t, filepath.Join(dir, "cart.json"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("cart")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("cart", []byte("a")))

	got, err := store.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))

	// Mutating the returned slice must not affect the stored value.
	got[0] = 'z'
	again, err := store.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, "a", string(again))

	require.NoError(t, store.Remove("cart"))
	_, err = store.Get("cart")
	assert.ErrorIs(t, err, ErrNotFound)
}
