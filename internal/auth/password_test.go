package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hashed, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)

	ok, err := hasher.Verify(hashed, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(hashed, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = hasher.Verify("not-a-hash", "s3cret")
	assert.Error(t, err)

	hasher.VerifyMissing("anything")
}

func TestHasher_RejectsOverlongSecret(t *testing.T) {
	hasher, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Contains(t, de.Details, "password")

	_, err = hasher.Hash(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)
}
