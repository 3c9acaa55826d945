// internal/domain/order/cache_test.go
package order

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/techstore-backend/internal/statestore"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func localOrder(id, invoice string) LocalOrder {
	return LocalOrder{
		ID:            id,
		InvoiceNumber: invoice,
		Date:          time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Items: []LocalOrderItem{
			{ID: "11111111-1111-1111-1111-111111111111", ProductName: "ROG Zephyrus G14", ProductPrice: 25000000, Quantity: 1},
		},
		TotalAmount:   25000000,
		PaymentMethod: PaymentMethodBankTransfer,
		PaymentStatus: PaymentStatusPending,
		OrderStatus:   OrderStatusProcessing,
		ShippingName:  "Budi Santoso",
		ShippingPhone: "0812000111",
	}
}

func TestOrderCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("orders are kept newest first", func(t *testing.T) {
		t.Parallel()

		c := LoadCache(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddOrder(ctx, localOrder("a", "INV-1748772000000-001"))
		c.AddOrder(ctx, localOrder("b", "INV-1748772000001-002"))

		orders := c.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, "b", orders[0].ID)
		assert.Equal(t, "a", orders[1].ID)
	})

	t.Run("lookup by invoice number", func(t *testing.T) {
		t.Parallel()

		c := LoadCache(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddOrder(ctx, localOrder("a", "INV-1748772000000-001"))
		c.AddOrder(ctx, localOrder("b", "INV-1748772000001-002"))

		found := c.GetOrderByInvoice("INV-1748772000001-002")
		require.NotNil(t, found)
		assert.Equal(t, "b", found.ID)

		assert.Nil(t, c.GetOrderByInvoice("INV-0000000000000-000"))
	})

	t.Run("duplicate invoice lookup returns most recent insertion", func(t *testing.T) {
		t.Parallel()

		c := LoadCache(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.AddOrder(ctx, localOrder("first", "INV-1748772000000-001"))
		c.AddOrder(ctx, localOrder("second", "INV-1748772000000-001"))

		found := c.GetOrderByInvoice("INV-1748772000000-001")
		require.NotNil(t, found)
		assert.Equal(t, "second", found.ID)
	})

	t.Run("state survives rehydration in order", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		c := LoadCache(ctx, store, "s1", testLogger())
		c.AddOrder(ctx, localOrder("a", "INV-1748772000000-001"))
		c.AddOrder(ctx, localOrder("b", "INV-1748772000001-002"))

		again := LoadCache(ctx, store, "s1", testLogger())
		orders := again.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, "b", orders[0].ID)
	})

	t.Run("corrupt snapshot yields empty cache", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		store.Save(ctx, CacheKey("s1"), []byte("garbage"))

		c := LoadCache(ctx, store, "s1", testLogger())
		assert.Empty(t, c.Orders())
	})
}
