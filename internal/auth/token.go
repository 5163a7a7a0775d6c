package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// DefaultTokenTTL applies when no lifetime is configured.
const DefaultTokenTTL = 30 * 24 * time.Hour

// Claims are the semantic contents of an access token.
type Claims struct {
	SubjectEmail string
	Role         domain.Role
	ExpiresAt    time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256 access tokens signed with a process-wide secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the default token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue signs a token for claims using the default lifetime.
func (tc *TokenCodec) Issue(claims Claims) (string, time.Time, error) {
	return tc.IssueWithTTL(claims, tc.ttl)
}

// IssueWithTTL signs a token that expires ttl after now. A zero ttl yields a token
// that is already expired.
func (tc *TokenCodec) IssueWithTTL(claims Claims, ttl time.Duration) (string, time.Time, error) {
	now := tc.now()
	expiresAt := now.Add(ttl)
	payload := &tokenClaims{
		Role: string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectEmail,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	tokenString, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, payload.ExpiresAt.Time, nil
}

// Verify checks signature and expiry and returns the decoded claims. Every
// failure is reported as ErrInvalidToken.
func (tc *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, invalidToken(ReasonMissing, nil)
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return tc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tc.now),
	)
	if err != nil {
		return nil, invalidToken(classifyJWTError(err), err)
	}

	payload, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, invalidToken(ReasonClaims, nil)
	}
	if payload.Subject == "" || payload.Role == "" {
		return nil, invalidToken(ReasonClaims, nil)
	}

	return &Claims{
		SubjectEmail: payload.Subject,
		Role:         domain.Role(payload.Role),
		ExpiresAt:    payload.ExpiresAt.Time,
	}, nil
}

func classifyJWTError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ReasonSignature
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing), errors.Is(err, jwt.ErrTokenInvalidClaims):
		return ReasonClaims
	default:
		return ReasonMalformed
	}
}
