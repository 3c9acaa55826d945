// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/techstore-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "TechStore API"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough-123",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testConfig())
	userID := "55555555-5555-5555-5555-555555555555"

	token, err := manager.GenerateAccessToken(userID, "budi@example.com", "Budi Santoso", false)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, "Budi Santoso", claims.Name)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "access", claims.TokenType)
}

func TestJWTTokenTypeMismatch(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testConfig())

	refresh, err := manager.GenerateRefreshToken("u1", "budi@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.Error(t, err)

	access, err := manager.GenerateAccessToken("u1", "budi@example.com", "Budi", true)
	require.NoError(t, err)

	_, err = manager.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateAccessToken("u1", "budi@example.com", "Budi", false)
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "another-secret-key-that-is-long-enough"
	other := NewJWTManager(otherCfg)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenNeverCarriesAdmin(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateRefreshToken("u1", "admin@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	manager := NewPasswordManager(testConfig())

	hash, err := manager.HashPassword("Sup3rStrong!")
	require.NoError(t, err)
	assert.NoError(t, manager.VerifyPassword("Sup3rStrong!", hash))
	assert.Error(t, manager.VerifyPassword("wrong-password", hash))
}

func TestPasswordValidation(t *testing.T) {
	t.Parallel()

	manager := NewPasswordManager(testConfig())

	assert.Error(t, manager.ValidatePassword("short1"))
	assert.Error(t, manager.ValidatePassword("onlyletters"))
	assert.Error(t, manager.ValidatePassword("0896127305"))
	assert.Error(t, manager.ValidatePassword("password1"))
	assert.NoError(t, manager.ValidatePassword("Sup3rStrong"))
}
