package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("round trip returns the embedded email", func(t *testing.T) {
		token, err := GenerateJWT("patient@example.com", secret, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		email, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "patient@example.com", email)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateJWT("patient@example.com", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := GenerateJWT("patient@example.com", "other-secret", time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ParseJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
