package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash matches the original password only", func(t *testing.T) {
		hash, err := HashPassword("1234", bcrypt.MinCost)
		require.NoError(t, err)

		assert.True(t, ComparePassword(hash, "1234"))
		assert.False(t, ComparePassword(hash, "12345"))
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := HashPassword("1234", bcrypt.MinCost)
		require.NoError(t, err)
		second, err := HashPassword("1234", bcrypt.MinCost)
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "bcrypt embeds a per-hash salt")
	})

	t.Run("out-of-range cost falls back to the default", func(t *testing.T) {
		hash, err := HashPassword("1234", bcrypt.MaxCost+1)
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, DefaultBcryptCost, cost)
	})

	t.Run("password over the bcrypt limit", func(t *testing.T) {
		tooLong := make([]byte, 80)
		for i := range tooLong {
			tooLong[i] = 'a'
		}

		_, err := HashPassword(string(tooLong), bcrypt.MinCost)
		assert.Error(t, err)
	})
}

func TestComparePassword_InvalidHash(t *testing.T) {
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "1234"))
}
