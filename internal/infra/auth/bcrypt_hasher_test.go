package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mihrab/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("CostFourPass1!")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("CostFourPass1!", hash))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash1, err := hasher.Hash("SamePassword1!")
	assert.NoError(t, err)
	hash2, err := hasher.Hash("SamePassword1!")
	assert.NoError(t, err)

	// Same password hashes differently each time.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Check("SamePassword1!", hash1))
	assert.True(t, hasher.Check("SamePassword1!", hash2))
}
