package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	parts := strings.Split(hash, ":")
	require.Len(t, parts, 2, "hash must be salt:hexDerivedKey")
	assert.Len(t, parts[0], saltLength*2)
	assert.Len(t, parts[1], keyLength*2)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same password must hash differently under fresh salts")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "secret123"))
	assert.False(t, VerifyPassword(hash, "secret124"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("", "secret123"))
	assert.False(t, VerifyPassword("no-separator", "secret123"))
	assert.False(t, VerifyPassword("nothex:nothex", "secret123"))
}
