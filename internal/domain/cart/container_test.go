// internal/domain/cart/container_test.go
package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/statestore"
)

const (
	laptopID = "11111111-1111-1111-1111-111111111111"
	mouseID  = "22222222-2222-2222-2222-222222222222"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func laptop() product.Snapshot {
	return product.Snapshot{
		ID:     laptopID,
		Name:   "ROG Zephyrus G14",
		Slug:   "rog-zephyrus-g14",
		Price:  25000000,
		Stock:  10,
		Images: []string{"/uploads/g14.jpg"},
	}
}

func mouse() product.Snapshot {
	return product.Snapshot{
		ID:    mouseID,
		Name:  "MX Master 3S",
		Slug:  "mx-master-3s",
		Price: 1500000,
		Stock: 40,
	}
}

func TestAddItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("adding same product twice increments quantity", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, laptop())
		c.AddItem(ctx, laptop())

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("non-conforming id leaves cart unchanged", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, product.Snapshot{ID: "laptops", Name: "placeholder", Price: 100})

		assert.Empty(t, c.Items())
	})

	t.Run("braced and urn id forms are rejected", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, product.Snapshot{ID: "{11111111-1111-1111-1111-111111111111}", Name: "x"})
		c.AddItem(ctx, product.Snapshot{ID: "urn:uuid:11111111-1111-1111-1111-111111111111", Name: "x"})

		assert.Empty(t, c.Items())
	})

	t.Run("distinct products append in insertion order", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, laptop())
		c.AddItem(ctx, mouse())

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, laptopID, items[0].Product.ID)
		assert.Equal(t, mouseID, items[1].Product.ID)
	})

	t.Run("mutation persists the whole snapshot", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		c := Load(ctx, store, "s1", testLogger())
		c.AddItem(ctx, laptop())

		data, ok := store.Load(ctx, Key("s1"))
		require.True(t, ok)

		var snap snapshot
		require.NoError(t, json.Unmarshal(data, &snap))
		require.Len(t, snap.Items, 1)
		assert.Equal(t, laptopID, snap.Items[0].Product.ID)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sets quantity on existing entry", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, laptop())
		c.UpdateQuantity(ctx, laptopID, 5)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("zero removes the entry", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, laptop())
		c.UpdateQuantity(ctx, laptopID, 0)

		assert.Empty(t, c.Items())
	})

	t.Run("negative removes the entry", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, laptop())
		c.UpdateQuantity(ctx, laptopID, -5)

		assert.Empty(t, c.Items())
	})

	t.Run("absent id is ignored and never created", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.UpdateQuantity(ctx, mouseID, 3)

		assert.Empty(t, c.Items())
	})
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
	c.AddItem(ctx, laptop())
	c.AddItem(ctx, mouse())

	c.RemoveItem(ctx, laptopID)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, mouseID, items[0].Product.ID)

	// Removing an absent id is a no-op
	c.RemoveItem(ctx, laptopID)
	assert.Len(t, c.Items(), 1)
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := statestore.NewMemoryStore()

	c := Load(ctx, store, "s1", testLogger())
	c.AddItem(ctx, laptop())
	c.Clear(ctx)

	assert.Empty(t, c.Items())

	// Cleared state is what rehydrates
	again := Load(ctx, store, "s1", testLogger())
	assert.Empty(t, again.Items())
}

func TestTotals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sums price times quantity", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddItem(ctx, product.Snapshot{ID: laptopID, Name: "a", Price: 100})
		c.UpdateQuantity(ctx, laptopID, 2)
		c.AddItem(ctx, product.Snapshot{ID: mouseID, Name: "b", Price: 50})

		assert.Equal(t, int64(250), c.TotalPrice())
		assert.Equal(t, 3, c.TotalItems())
	})

	t.Run("empty cart totals are zero", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		assert.Equal(t, int64(0), c.TotalPrice())
		assert.Equal(t, 0, c.TotalItems())
	})

	t.Run("incomplete snapshots are skipped, not fatal", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		snap := snapshot{Items: []Entry{
			{Product: product.Snapshot{ID: laptopID, Name: "a", Price: 100}, Quantity: 2},
			{Product: product.Snapshot{ID: mouseID, Price: 9999}, Quantity: 1}, // no name
		}}
		data, err := json.Marshal(snap)
		require.NoError(t, err)
		store.Save(ctx, Key("s1"), data)

		c := Load(ctx, store, "s1", testLogger())
		assert.Equal(t, int64(200), c.TotalPrice())
		assert.Equal(t, 2, c.TotalItems())
	})
}

func TestRehydration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("non-conforming ids are dropped on load", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		snap := snapshot{Items: []Entry{
			{Product: product.Snapshot{ID: "laptops", Name: "placeholder", Price: 10}, Quantity: 1},
			{Product: product.Snapshot{ID: laptopID, Name: "real", Price: 100}, Quantity: 1},
		}}
		data, err := json.Marshal(snap)
		require.NoError(t, err)
		store.Save(ctx, Key("s1"), data)

		c := Load(ctx, store, "s1", testLogger())
		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, laptopID, items[0].Product.ID)
	})

	t.Run("corrupt snapshot yields an empty cart", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		store.Save(ctx, Key("s1"), []byte("{not json"))

		c := Load(ctx, store, "s1", testLogger())
		assert.Empty(t, c.Items())
	})

	t.Run("round trip preserves quantities", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		c := Load(ctx, store, "s1", testLogger())
		c.AddItem(ctx, laptop())
		c.AddItem(ctx, laptop())
		c.AddItem(ctx, mouse())

		again := Load(ctx, store, "s1", testLogger())
		items := again.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 1, items[1].Quantity)
	})
}
