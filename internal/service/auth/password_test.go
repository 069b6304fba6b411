package auth_test

import (
	"testing"

	"github.com/placeshare/places-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	verifier := auth.NewBcryptVerifier()

	hashed, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "password123", hashed)

	assert.NoError(t, verifier.Compare(hashed, "password123"))
	assert.Error(t, verifier.Compare(hashed, "wrong-password"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	verifier := auth.NewBcryptVerifier()

	for _, cost := range []int{-1, 0, 99} {
		hasher := auth.NewBcryptHasher(cost)
		hashed, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.NoError(t, verifier.Compare(hashed, "password123"))
	}
}
