package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken("user-1", "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := service.GenerateAccessToken("user-1", "user@example.com")
		assert.NoError(t, err)

		other := NewJWTService("another-secret")
		claims, err := other.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		claims, err := service.ValidateToken("not.a.token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestJWTService_RefreshToken(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("token ID round trips through the JTI claim", func(t *testing.T) {
		tokenID, token, err := service.GenerateRefreshToken("user-1", "user@example.com")
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenID)

		extracted, err := service.ExtractTokenID(token)
		assert.NoError(t, err)
		assert.Equal(t, tokenID, extracted)
	})

	t.Run("distinct tokens get distinct IDs", func(t *testing.T) {
		firstID, _, err := service.GenerateRefreshToken("user-1", "user@example.com")
		assert.NoError(t, err)
		secondID, _, err := service.GenerateRefreshToken("user-1", "user@example.com")
		assert.NoError(t, err)

		assert.NotEqual(t, firstID, secondID)
	})

	t.Run("access token has no token ID", func(t *testing.T) {
		token, err := service.GenerateAccessToken("user-1", "user@example.com")
		assert.NoError(t, err)

		_, err = service.ExtractTokenID(token)
		assert.Error(t, err)
	})
}
