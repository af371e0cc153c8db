package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("pw1secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1secret", digest)
	assert.True(t, CheckPassword("pw1secret", digest))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)

	// Stored digests must never be comparable by equality
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-input", first))
	assert.True(t, CheckPassword("same-input", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, CheckPassword("battery-staple", digest))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// A corrupted stored digest reads as a failed verification, not a crash
	assert.False(t, CheckPassword("whatever", ""))
	assert.False(t, CheckPassword("whatever", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("whatever", "$2a$10$tooshort"))
}
