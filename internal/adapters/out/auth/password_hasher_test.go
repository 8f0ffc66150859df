package auth_test

import (
	"strings"
	"testing"

	"mescolis/internal/adapters/out/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher()

	t.Run("should hash and verify a password", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
		assert.True(t, hasher.Compare(hash, "secret123"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")

		require.NoError(t, err)
		assert.False(t, hasher.Compare(hash, "secret124"))
	})

	t.Run("should salt each hash", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)
		second, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("should reject a malformed hash", func(t *testing.T) {
		assert.False(t, hasher.Compare("not-a-bcrypt-hash", "secret123"))
	})
}
