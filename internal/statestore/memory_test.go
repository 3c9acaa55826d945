// internal/statestore/memory_test.go
package statestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("load absent key", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		data, ok := store.Load(ctx, "cart:missing")
		assert.False(t, ok)
		assert.Nil(t, data)
	})

	t.Run("save then load", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		store.Save(ctx, "cart:abc", []byte(`{"items":[]}`))

		data, ok := store.Load(ctx, "cart:abc")
		assert.True(t, ok)
		assert.Equal(t, []byte(`{"items":[]}`), data)
	})

	t.Run("save overwrites whole snapshot", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		store.Save(ctx, "wishlist:abc", []byte("first"))
		store.Save(ctx, "wishlist:abc", []byte("second"))

		data, ok := store.Load(ctx, "wishlist:abc")
		assert.True(t, ok)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("delete removes key", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		store.Save(ctx, "auth:abc", []byte("state"))
		store.Delete(ctx, "auth:abc")

		_, ok := store.Load(ctx, "auth:abc")
		assert.False(t, ok)
	})

	t.Run("loaded bytes are a copy", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		store.Save(ctx, "orders:abc", []byte("snapshot"))

		data, ok := store.Load(ctx, "orders:abc")
		assert.True(t, ok)
		data[0] = 'X'

		again, ok := store.Load(ctx, "orders:abc")
		assert.True(t, ok)
		assert.Equal(t, []byte("snapshot"), again)
	})
}
