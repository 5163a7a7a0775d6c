package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// TokenTypeBearer is the token kind returned by login.
const TokenTypeBearer = "bearer"

// AuthService handles login for every identity variant.
type AuthService struct {
	students   auth.StudentLookup
	professors auth.ProfessorLookup
	admins     auth.AdminLookup
	hasher     *auth.Hasher
	tokens     *auth.TokenCodec
	events     publisher
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	Students   auth.StudentLookup
	Professors auth.ProfessorLookup
	Admins     auth.AdminLookup
	Hasher     *auth.Hasher
	Tokens     *auth.TokenCodec
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		students:   deps.Students,
		professors: deps.Professors,
		admins:     deps.Admins,
		hasher:     deps.Hasher,
		tokens:     deps.Tokens,
		events:     newPublisher(deps.Dispatcher, logger),
		logger:     logger,
	}
}

// Login verifies the secret of the role's identity with that email and issues a
// token. Unknown email and wrong secret fail identically.
func (s *AuthService) Login(ctx context.Context, role domain.Role, email, password string) (*domain.Token, error) {
	email = domain.NormalizeEmail(email)

	identity, hash, err := s.credentials(ctx, role, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.hasher.VerifyMissing(password)
			return nil, invalidCredentials()
		}
		if errors.Is(err, auth.ErrRoleNotFound) {
			return nil, apperrors.NewBadRequest("ROLE_NOT_FOUND", err.Error())
		}
		return nil, apperrors.MapError(err)
	}

	ok, err := s.hasher.Verify(hash, password)
	if err != nil {
		s.logger.Error("stored password hash unreadable",
			zap.String("role", string(role)),
			zap.Int64("id", identity.IdentityID()),
			zap.Error(err))
		return nil, invalidCredentials()
	}
	if !ok {
		return nil, invalidCredentials()
	}

	tokenStr, exp, err := s.tokens.Issue(auth.Claims{SubjectEmail: identity.IdentityEmail(), Role: role})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.events.publish(ctx, events.Event{
		Type:    events.EventLoginSucceeded,
		Actor:   identityActor(identity),
		Payload: events.LoginSucceededPayload{Email: identity.IdentityEmail(), ExpiresAt: exp},
	})

	return &domain.Token{AccessToken: tokenStr, TokenType: TokenTypeBearer, Role: role, ExpiresAt: exp}, nil
}

func (s *AuthService) credentials(ctx context.Context, role domain.Role, email string) (domain.Identity, string, error) {
	switch role {
	case domain.RoleStudent:
		student, err := s.students.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return student, student.PasswordHash, nil
	case domain.RoleProfessor:
		professor, err := s.professors.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return professor, professor.PasswordHash, nil
	case domain.RoleAdmin:
		admin, err := s.admins.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return admin, admin.PasswordHash, nil
	default:
		return nil, "", auth.ErrRoleNotFound
	}
}

func invalidCredentials() error {
	return &apperrors.DomainError{
		Code:       "INVALID_CREDENTIALS",
		Message:    auth.ErrInvalidCredentials.Error(),
		HTTPStatus: http.StatusUnauthorized,
		Err:        auth.ErrInvalidCredentials,
	}
}
