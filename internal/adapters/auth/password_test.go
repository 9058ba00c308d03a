package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(4)
	password := "admin123"

	hash, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	require.NoError(t, h.Compare(hash, password))
}

func TestBcryptHasher_Compare_wrong_password(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("correct")
	require.NoError(t, err)

	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasher_longPasswordsAreNotTruncated(t *testing.T) {
	h := NewBcryptHasher(4)
	base := strings.Repeat("a", 80)
	hash, err := h.Hash(base + "1")
	require.NoError(t, err)

	assert.Error(t, h.Compare(hash, base+"2"))
}

func TestBcryptHasher_saltsEachHash(t *testing.T) {
	h := NewBcryptHasher(4)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
