package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papi/internal/model"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := model.SessionUser{
		ID:    "user-1",
		Email: "buyer@example.com",
		Role:  model.RoleBuyer,
	}

	token, sessionID, expiresAt, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)
	assert.WithinDuration(t, time.Now().Add(SessionExpiry), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, model.RoleBuyer, claims.Role)
	assert.Equal(t, sessionID, claims.ID)
}

func TestTokenService_RejectsBadTokens(t *testing.T) {
	svc := NewTokenService("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret")
		token, _, _, err := other.GenerateSessionToken(model.SessionUser{ID: "user-1"})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestTokenService_SessionIDsAreUnique(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := model.SessionUser{ID: "user-1"}

	_, first, _, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)
	_, second, _, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
