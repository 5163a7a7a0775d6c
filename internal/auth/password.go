package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// MaxPasswordBytes is the longest secret bcrypt accepts.
const MaxPasswordBytes = 72

// Hasher hashes and verifies secrets with bcrypt.
type Hasher struct {
	cost  int
	dummy []byte
}

// NewHasher builds a Hasher with the given bcrypt cost. Costs outside bcrypt's
// range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("campusly-dummy-secret"), cost)
	if err != nil {
		return nil, err
	}
	return &Hasher{cost: cost, dummy: dummy}, nil
}

// Hash returns the bcrypt hash of secret. Secrets longer than
// MaxPasswordBytes are a validation failure.
func (h *Hasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("invalid payload", map[string]any{"password": "at most 72 bytes"})
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether secret matches hashed.
func (h *Hasher) Verify(hashed, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// VerifyMissing spends the same work as Verify for an identity that does not exist.
func (h *Hasher) VerifyMissing(secret string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(secret))
}
