// internal/domain/session/container.go
package session

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/statestore"
)

// UserRecord is the single user a session can hold
type UserRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Role    string `json:"role,omitempty"`
}

// ProfilePatch carries the fields a profile update may change. Nil
// fields are left untouched.
type ProfilePatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Avatar  *string `json:"avatar"`
}

// snapshot is the serialized whole-state form written on every mutation
type snapshot struct {
	User *UserRecord `json:"user"`
}

// Container holds at most one authenticated user per session. Absence
// of a record means not authenticated. Multi-account switching is not
// modeled; mutations only replace or merge-patch the held record.
type Container struct {
	store  statestore.Store
	key    string
	logger *logrus.Logger
	user   *UserRecord
}

// Key returns the store namespace for a session's auth state
func Key(sessionID string) string {
	return "auth:" + sessionID
}

// Load rehydrates the auth state for the session. A corrupt snapshot
// yields an unauthenticated session; Load never fails.
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
		logger.WithError(err).WithField("key", c.key).Warn("Discarding unreadable auth snapshot")
		return c
	}

	c.user = snap.User
	return c
}

// SetUser replaces the held record. A nil user clears the session.
func (c *Container) SetUser(ctx context.Context, user *UserRecord) {
	if user == nil {
		c.user = nil
	} else {
		u := *user
		c.user = &u
	}
	c.persist(ctx)
}

// Logout clears the held record
func (c *Container) Logout(ctx context.Context) {
	c.SetUser(ctx, nil)
}

// UpdateProfile merge-patches the held record field by field. With no
// user held the call is a no-op and never creates a session.
func (c *Container) UpdateProfile(ctx context.Context, patch ProfilePatch) {
	if c.user == nil {
		return
	}

	if patch.Name != nil {
		c.user.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.user.Address = *patch.Address
	}
	if patch.Avatar != nil {
		c.user.Avatar = *patch.Avatar
	}

	c.persist(ctx)
}

// User returns the held record or nil
func (c *Container) User() *UserRecord {
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated reports whether a user record is held
func (c *Container) IsAuthenticated() bool {
	return c.user != nil
}

func (c *Container) persist(ctx context.Context) {
	data, err := json.Marshal(snapshot{User: c.user})
	if err != nil {
		c.logger.WithError(err).WithField("key", c.key).Warn("Failed to serialize auth state")
		return
	}
	c.store.Save(ctx, c.key, data)
}
