// internal/domain/cart/container.go
package cart

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/statestore"
)

// Entry is one (product snapshot, quantity) pair. At most one entry
// exists per product id and quantity is always >= 1.
type Entry struct {
	Product  product.Snapshot `json:"product"`
	Quantity int              `json:"quantity"`
}

// snapshot is the serialized whole-state form written on every mutation
type snapshot struct {
	Items []Entry `json:"items"`
}

// Container holds one session's cart. It is rehydrated from the store,
// mutated, and flushed within a single request; instances are not safe
// for concurrent use.
type Container struct {
	store   statestore.Store
	key     string
	logger  *logrus.Logger
	entries []Entry
}

// Key returns the store namespace for a session's cart
func Key(sessionID string) string {
	return "cart:" + sessionID
}

// Load rehydrates a cart for the session. Entries whose product id does
// not conform to the canonical identifier format are dropped silently,
// so previously seeded placeholder data never leaks into a session.
// Load never fails; a corrupt snapshot yields an empty cart.
func Load(ctx context.Context, store statestore.Store, sessionID string, logger *logrus.Logger) *Container {
	c := &Container{
		store:  store,
		key:    Key(sessionID),
		logger: logger,
	}

	data, ok := store.Load(ctx, c.key)
	if !ok {
		return c
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.WithError(err).WithField("key", c.key).Warn("Discarding unreadable cart snapshot")
		return c
	}

	for _, entry := range snap.Items {
		if !IsStableID(entry.Product.ID) {
			logger.WithFields(logrus.Fields{
				"key":        c.key,
				"product_id": entry.Product.ID,
			}).Debug("Dropping cart entry with non-conforming product id")
			continue
		}
		if entry.Quantity < 1 {
			continue
		}
		c.entries = append(c.entries, entry)
	}

	return c
}

// AddItem adds one unit of the product. A product id that is not a
// canonical identifier makes the call a logged no-op. An existing entry
// gets its quantity incremented; otherwise a new entry is appended.
func (c *Container) AddItem(ctx context.Context, p product.Snapshot) {
	if !IsStableID(p.ID) {
		c.logger.WithFields(logrus.Fields{
			"key":        c.key,
			"product_id": p.ID,
		}).Warn("Rejected cart add with non-conforming product id")
		return
	}

	for i := range c.entries {
		if c.entries[i].Product.ID == p.ID {
			c.entries[i].Quantity++
			c.persist(ctx)
			return
		}
	}

	c.entries = append(c.entries, Entry{Product: p, Quantity: 1})
	c.persist(ctx)
}

// RemoveItem deletes the entry with the given product id. Absent ids
// are a silent no-op.
func (c *Container) RemoveItem(ctx context.Context, productID string) {
	for i := range c.entries {
		if c.entries[i].Product.ID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets an entry's quantity. A quantity <= 0 removes the
// entry; absent ids are ignored, never created.
func (c *Container) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(ctx, productID)
		return
	}

	for i := range c.entries {
		if c.entries[i].Product.ID == productID {
			c.entries[i].Quantity = quantity
			c.persist(ctx)
			return
		}
	}
}

// Clear empties the cart
func (c *Container) Clear(ctx context.Context) {
	c.entries = nil
	c.persist(ctx)
}

// Items returns the entries in insertion order
func (c *Container) Items() []Entry {
	items := make([]Entry, len(c.entries))
	copy(items, c.entries)
	return items
}

// TotalPrice sums price * quantity over entries, skipping incomplete
// product snapshots so a corrupted entry never breaks the aggregate.
func (c *Container) TotalPrice() int64 {
	var total int64
	for _, entry := range c.entries {
		if !entry.Product.IsComplete() {
			continue
		}
		total += entry.Product.Price * int64(entry.Quantity)
	}
	return total
}

// TotalItems sums quantities with the same defensive filtering
func (c *Container) TotalItems() int {
	var total int
	for _, entry := range c.entries {
		if !entry.Product.IsComplete() {
			continue
		}
		total += entry.Quantity
	}
	return total
}

// persist flushes the whole cart state, best-effort. Failures are
// handled inside the store; the in-memory mutation always stands.
func (c *Container) persist(ctx context.Context) {
	data, err := json.Marshal(snapshot{Items: c.entries})
	if err != nil {
		c.logger.WithError(err).WithField("key", c.key).Warn("Failed to serialize cart state")
		return
	}
	c.store.Save(ctx, c.key, data)
}

// IsStableID reports whether id is in the canonical 8-4-4-4-12
// hexadecimal form. uuid.Parse also accepts URN and braced variants,
// so the length is pinned to the plain hyphenated shape.
func IsStableID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
