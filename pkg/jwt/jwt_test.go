package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Initialize("bookease-test", "test-secret-key", time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken("user-1", "ana@example.com", "Ana", "user")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "user", claims.Level)
	assert.Equal(t, "bookease-test", claims.Issuer)
}

func TestValidateToken_Invalid(t *testing.T) {
	t.Run("error: garbage", func(t *testing.T) {
		_, err := ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("error: tampered", func(t *testing.T) {
		token, err := GenerateToken("user-1", "ana@example.com", "Ana", "user")
		require.NoError(t, err)

		_, err = ValidateToken(token + "x")
		assert.Error(t, err)
	})
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, ParseDuration("24h"))
	assert.Equal(t, 7*24*time.Hour, ParseDuration("7d"))
	assert.Equal(t, time.Duration(0), ParseDuration("soon"))
}
