package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("same password hashes to different values", func(t *testing.T) {
		first, err := HashPassword("secret1")
		require.NoError(t, err)
		second, err := HashPassword("secret1")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("both hashes still verify", func(t *testing.T) {
		first, err := HashPassword("secret1")
		require.NoError(t, err)
		second, err := HashPassword("secret1")
		require.NoError(t, err)

		for _, hash := range []string{first, second} {
			match, err := VerifyPassword("secret1", hash)
			require.NoError(t, err)
			assert.True(t, match)
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("wrong password is rejected without error", func(t *testing.T) {
		hash, err := HashPassword("correct-password")
		require.NoError(t, err)

		match, err := VerifyPassword("wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, match)
	})

	t.Run("malformed hash returns error", func(t *testing.T) {
		match, err := VerifyPassword("anything", "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.False(t, match)
		assert.Contains(t, err.Error(), "password comparison failed")
	})

	t.Run("empty password against real hash", func(t *testing.T) {
		hash, err := HashPassword("secret1")
		require.NoError(t, err)

		match, err := VerifyPassword("", hash)
		require.NoError(t, err)
		assert.False(t, match)
	})
}
