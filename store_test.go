// FILE: lixenwraith/kvconfig/store_test.go
package kvconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreUninitialized tests lookups before any load
func TestStoreUninitialized(t *testing.T) {
	store := New(WithLogger(nil))
	assert.Equal(t, StateUninitialized, store.State())
	assert.False(t, store.Loaded())

	for i := 0; i < 3; i++ {
		_, err := store.Get("anything")
		assert.ErrorIs(t, err, ErrUninitialized)

		_, err = store.GetOr("anything", "fallback")
		assert.ErrorIs(t, err, ErrUninitialized)
	}

	_, ok := store.Lookup("anything")
	assert.False(t, ok)
	assert.Nil(t, store.Keys())
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Path())

	_, err := store.Snapshot()
	assert.ErrorIs(t, err, ErrUninitialized)
}

// TestStoreAccessors tests the read helpers on a loaded store
func TestStoreAccessors(t *testing.T) {
	path := writeConfig(t, "app.cfg", "b = 2\na = 1\nc =\n")
	store := New(WithLogger(nil))
	require.NoError(t, store.Init(path))

	t.Run("Lookup", func(t *testing.T) {
		value, ok := store.Lookup("a")
		assert.True(t, ok)
		assert.Equal(t, "1", value)

		value, ok = store.Lookup("c")
		assert.True(t, ok)
		assert.Empty(t, value)

		_, ok = store.Lookup("z")
		assert.False(t, ok)
	})

	t.Run("GetOrPrefersStoredValue", func(t *testing.T) {
		value, err := store.GetOr("c", "fallback")
		require.NoError(t, err)
		assert.Empty(t, value, "an empty stored value still wins over the fallback")
	})

	t.Run("KeysSorted", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, store.Keys())
		assert.Equal(t, 3, store.Len())
	})

	t.Run("SnapshotIsCopy", func(t *testing.T) {
		snapshot, err := store.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": ""}, snapshot)

		snapshot["a"] = "changed"
		value, _ := store.Get("a")
		assert.Equal(t, "1", value)
	})
}

// TestStateString tests state names
func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(42).String())
}

// TestDebug tests the debug dump
func TestDebug(t *testing.T) {
	store := New(WithLogger(nil))
	assert.Contains(t, store.Debug(), "State: uninitialized")
	assert.NotContains(t, store.Debug(), "Values")

	path := writeConfig(t, "app.cfg", "host = localhost\nport = 8080\n")
	require.NoError(t, store.Init(path))

	debug := store.Debug()
	assert.Contains(t, debug, "State: loaded")
	assert.Contains(t, debug, "File: "+path)
	assert.Contains(t, debug, "Values (2):")
	assert.Contains(t, debug, "  host = localhost\n  port = 8080\n")
}
