package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r-secret!")
	require.NoError(t, err)

	assert.NotEqual(t, "Sup3r-secret!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("Sup3r-secret!")
	require.NoError(t, err)
	second, err := HashPassword("Sup3r-secret!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r-secret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword("Sup3r-secret!", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("Sup3r-secret!", "not-a-hash"))
}
