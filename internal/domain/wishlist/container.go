// internal/domain/wishlist/container.go
package wishlist

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/statestore"
)

// snapshot is the serialized whole-state form written on every mutation
type snapshot struct {
	Items []product.Snapshot `json:"items"`
}

// Container holds one session's wishlist: a set of product snapshots
// keyed by id, kept in insertion order for display. Instances are
// rehydrated, mutated, and flushed within a single request.
type Container struct {
	store  statestore.Store
	key    string
	logger *logrus.Logger
	items  []product.Snapshot
}

// Key returns the store namespace for a session's wishlist
func Key(sessionID string) string {
	return "wishlist:" + sessionID
}

// Load rehydrates a wishlist for the session. A corrupt snapshot
// yields an empty wishlist; Load never fails.
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
		logger.WithError(err).WithField("key", c.key).Warn("Discarding unreadable wishlist snapshot")
		return c
	}

	c.items = snap.Items
	return c
}

// AddItem appends the product unless an entry with the same id already
// exists, in which case the call is a no-op.
func (c *Container) AddItem(ctx context.Context, p product.Snapshot) {
	if c.Contains(p.ID) {
		return
	}
	c.items = append(c.items, p)
	c.persist(ctx)
}

// RemoveItem deletes the entry with the given product id if present
func (c *Container) RemoveItem(ctx context.Context, productID string) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

// Contains reports membership by product id
func (c *Container) Contains(productID string) bool {
	for i := range c.items {
		if c.items[i].ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist
func (c *Container) Clear(ctx context.Context) {
	c.items = nil
	c.persist(ctx)
}

// Items returns the snapshots in insertion order
func (c *Container) Items() []product.Snapshot {
	items := make([]product.Snapshot, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Container) persist(ctx context.Context) {
	data, err := json.Marshal(snapshot{Items: c.items})
	if err != nil {
		c.logger.WithError(err).WithField("key", c.key).Warn("Failed to serialize wishlist state")
		return
	}
	c.store.Save(ctx, c.key, data)
}
