// internal/domain/wishlist/container_test.go
package wishlist

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/statestore"
)

const keyboardID = "33333333-3333-3333-3333-333333333333"

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func keyboard() product.Snapshot {
	return product.Snapshot{
		ID:    keyboardID,
		Name:  "Keychron K2",
		Slug:  "keychron-k2",
		Price: 1200000,
	}
}

func TestWishlist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("double add stores one entry", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, keyboard())
		c.AddItem(ctx, keyboard())

		assert.Len(t, c.Items(), 1)
	})

	t.Run("contains follows add and remove", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		assert.False(t, c.Contains(keyboardID))

		c.AddItem(ctx, keyboard())
		assert.True(t, c.Contains(keyboardID))

		c.RemoveItem(ctx, keyboardID)
		assert.False(t, c.Contains(keyboardID))
	})

	t.Run("remove absent id is a no-op", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, keyboard())
		c.RemoveItem(ctx, "44444444-4444-4444-4444-444444444444")

		assert.Len(t, c.Items(), 1)
	})

	t.Run("clear empties and persists", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		c := Load(ctx, store, "s1", testLogger())
		c.AddItem(ctx, keyboard())
		c.Clear(ctx)

		again := Load(ctx, store, "s1", testLogger())
		assert.Empty(t, again.Items())
	})

	t.Run("state survives rehydration", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		c := Load(ctx, store, "s1", testLogger())
		c.AddItem(ctx, keyboard())

		again := Load(ctx, store, "s1", testLogger())
		items := again.Items()
		require.Len(t, items, 1)
		assert.Equal(t, keyboardID, items[0].ID)
		assert.True(t, again.Contains(keyboardID))
	})

	t.Run("corrupt snapshot yields empty wishlist", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		store.Save(ctx, Key("s1"), []byte("not json"))

		c := Load(ctx, store, "s1", testLogger())
		assert.Empty(t, c.Items())
	})
}
