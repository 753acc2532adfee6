package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(7, "staff@example.com", 1)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, int16(7), claims.AccountID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, 1, claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenCarriesOnlyAccountID(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)

	assert.Equal(t, int16(7), claims.AccountID)
	assert.Empty(t, claims.Email)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	access, err := m.GenerateAccessToken(7, "staff@example.com", 1)
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(7)
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(7, "staff@example.com", 1)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)
	other := NewManager("different", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(7, "staff@example.com", 1)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}
