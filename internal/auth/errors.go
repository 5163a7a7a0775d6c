package auth

import "errors"

var (
	// ErrInvalidToken covers missing, malformed, tampered and expired tokens as
	// well as tokens whose subject no longer exists. Callers only ever see this
	// one kind; the reason is kept for logs.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrForbidden is returned when the token's role is not allowed on an endpoint.
	ErrForbidden = errors.New("operation not permitted")
	// ErrRoleNotFound is returned when a role maps to no identity variant.
	ErrRoleNotFound = errors.New("invalid role")
	// ErrInvalidCredentials is the single login failure for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Reasons recorded on TokenError.
const (
	ReasonMissing         = "missing"
	ReasonMalformed       = "malformed"
	ReasonSignature       = "signature"
	ReasonExpired         = "expired"
	ReasonClaims          = "claims"
	ReasonSubjectNotFound = "subject_not_found"
)

// TokenError is an ErrInvalidToken with an internal reason code.
type TokenError struct {
	Reason string
	Err    error
}

func (e *TokenError) Error() string {
	return ErrInvalidToken.Error()
}

func (e *TokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

func invalidToken(reason string, err error) error {
	return &TokenError{Reason: reason, Err: err}
}

// InvalidTokenReason extracts the internal reason from err, if any.
func InvalidTokenReason(err error) string {
	var tokenErr *TokenError
	if errors.As(err, &tokenErr) {
		return tokenErr.Reason
	}
	return ""
}
