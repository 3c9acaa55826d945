// internal/domain/session/container_test.go
package session

import (
	"context"
	"testing"

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

func budi() *UserRecord {
	return &UserRecord{
		ID:    "55555555-5555-5555-5555-555555555555",
		Name:  "Budi Santoso",
		Email: "budi@example.com",
		Role:  "customer",
	}
}

func strPtr(s string) *string { return &s }

func TestAuthSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("starts unauthenticated", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		assert.False(t, c.IsAuthenticated())
		assert.Nil(t, c.User())
	})

	t.Run("set user authenticates, logout clears", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.SetUser(ctx, budi())
		assert.True(t, c.IsAuthenticated())

		c.Logout(ctx)
		assert.False(t, c.IsAuthenticated())
		assert.Nil(t, c.User())
	})

	t.Run("update profile patches only given fields", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.SetUser(ctx, budi())

		c.UpdateProfile(ctx, ProfilePatch{Phone: strPtr("123")})

		user := c.User()
		require.NotNil(t, user)
		assert.Equal(t, "123", user.Phone)
		assert.Equal(t, "Budi Santoso", user.Name)
		assert.Equal(t, "budi@example.com", user.Email)
	})

	t.Run("update profile without session is a no-op", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.UpdateProfile(ctx, ProfilePatch{Phone: strPtr("123")})

		assert.False(t, c.IsAuthenticated())
		assert.Nil(t, c.User())
	})

	t.Run("state survives rehydration", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		c := Load(ctx, store, "s1", testLogger())
		c.SetUser(ctx, budi())
		c.UpdateProfile(ctx, ProfilePatch{Address: strPtr("Jl. Melati No. 7")})

		again := Load(ctx, store, "s1", testLogger())
		require.True(t, again.IsAuthenticated())
		assert.Equal(t, "Jl. Melati No. 7", again.User().Address)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		t.Parallel()

		c := Load(ctx, statestore.NewMemoryStore(), "s1", testLogger())
		c.SetUser(ctx, budi())

		user := c.User()
		user.Name = "mutated"

		assert.Equal(t, "Budi Santoso", c.User().Name)
	})

	t.Run("corrupt snapshot is unauthenticated", func(t *testing.T) {
		t.Parallel()

		store := statestore.NewMemoryStore()
		store.Save(ctx, Key("s1"), []byte("][garbage"))

		c := Load(ctx, store, "s1", testLogger())
		assert.False(t, c.IsAuthenticated())
	})
}
