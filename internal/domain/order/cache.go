// internal/domain/order/cache.go
package order

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/statestore"
)

// cacheSnapshot is the serialized whole-state form of the cache
type cacheSnapshot struct {
	Orders []LocalOrder `json:"orders"`
}

// Cache is the session-scoped legacy order list. Orders are prepended
// so the list is always newest-first, which the order history display
// relies on. The authoritative order record lives in the database; the
// cache is a best-effort local mirror.
type Cache struct {
	store  statestore.Store
	key    string
	logger *logrus.Logger
	orders []LocalOrder
}

// CacheKey returns the store namespace for a session's order cache
func CacheKey(sessionID string) string {
	return "orders:" + sessionID
}

// LoadCache rehydrates the order cache for the session. A corrupt
// snapshot yields an empty cache; loading never fails.
func LoadCache(ctx context.Context, store statestore.Store, sessionID string, logger *logrus.Logger) *Cache {
	c := &Cache{
		store:  store,
		key:    CacheKey(sessionID),
		logger: logger,
	}

	data, ok := store.Load(ctx, c.key)
	if !ok {
		return c
	}

	var snap cacheSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.WithError(err).WithField("key", c.key).Warn("Discarding unreadable order cache snapshot")
		return c
	}

	c.orders = snap.Orders
	return c
}

// AddOrder prepends the order. Uniqueness of invoice numbers is not
// enforced here; a duplicate insertion is permitted and wins lookups
// because it sits earlier in the list.
func (c *Cache) AddOrder(ctx context.Context, o LocalOrder) {
	c.orders = append([]LocalOrder{o}, c.orders...)
	c.persist(ctx)
}

// GetOrderByInvoice returns the first order whose invoice number
// matches exactly, or nil when absent.
func (c *Cache) GetOrderByInvoice(invoiceNumber string) *LocalOrder {
	for i := range c.orders {
		if c.orders[i].InvoiceNumber == invoiceNumber {
			o := c.orders[i]
			return &o
		}
	}
	return nil
}

// Orders returns the cached orders, newest first
func (c *Cache) Orders() []LocalOrder {
	orders := make([]LocalOrder, len(c.orders))
	copy(orders, c.orders)
	return orders
}

func (c *Cache) persist(ctx context.Context) {
	data, err := json.Marshal(cacheSnapshot{Orders: c.orders})
	if err != nil {
		c.logger.WithError(err).WithField("key", c.key).Warn("Failed to serialize order cache")
		return
	}
	c.store.Save(ctx, c.key, data)
}
