package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	for _, role := range domain.Roles {
		token, exp, err := codec.Issue(Claims{SubjectEmail: "ada@uni.edu", Role: role})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)

		claims, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "ada@uni.edu", claims.SubjectEmail)
		assert.Equal(t, role, claims.Role)
		assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", 0)
	assert.Equal(t, 30*24*time.Hour, codec.TTL())

	_, exp, err := codec.Issue(Claims{SubjectEmail: "a@uni.edu", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, 2*time.Second)
}

func TestTokenCodec_ZeroTTLNeverVerifies(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, _, err := codec.IssueWithTTL(Claims{SubjectEmail: "a@uni.edu", Role: domain.RoleStudent}, 0)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, ReasonExpired, InvalidTokenReason(err))
}

func TestTokenCodec_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", time.Hour)
	codec.now = func() time.Time { return issuedAt }

	token, _, err := codec.Issue(Claims{SubjectEmail: "a@uni.edu", Role: domain.RoleStudent})
	require.NoError(t, err)

	codec.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = codec.Verify(token)
	require.NoError(t, err)

	codec.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_RejectsTamperedSignature(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	token, _, err := codec.Issue(Claims{SubjectEmail: "a@uni.edu", Role: domain.RoleStudent})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, ReasonSignature, InvalidTokenReason(err))
}

func TestTokenCodec_RejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenCodec("other", time.Hour).Issue(Claims{SubjectEmail: "a@uni.edu", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = NewTokenCodec("secret", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_RejectsMalformedAndIncomplete(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a@uni.edu", "role": "student"})
	noExpToken, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)

	noRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@uni.edu",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noRoleToken, err := noRole.SignedString([]byte("secret"))
	require.NoError(t, err)

	otherAlg := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  "a@uni.edu",
		"role": "student",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	otherAlgToken, err := otherAlg.SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"missing exp":  noExpToken,
		"missing role": noRoleToken,
		"wrong alg":    otherAlgToken,
		"two segments": "abc.def",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Verify(token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Equal(t, ErrInvalidToken.Error(), err.Error())
		})
	}
}
