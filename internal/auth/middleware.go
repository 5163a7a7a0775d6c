package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

const actorKey = "auth_actor"

// AccessGate validates bearer tokens and enforces per-endpoint role allow-lists.
type AccessGate struct {
	tokens   *TokenCodec
	resolver *IdentityResolver
	logger   *zap.Logger
}

// NewAccessGate constructs the gate.
func NewAccessGate(tokens *TokenCodec, resolver *IdentityResolver, logger *zap.Logger) *AccessGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessGate{tokens: tokens, resolver: resolver, logger: logger}
}

// Authenticate runs the full check for one request: extract the bearer token,
// verify it, then resolve the identity against allowed.
func (g *AccessGate) Authenticate(ctx context.Context, authHeader string, allowed domain.RoleSet) (*Actor, error) {
	token, err := bearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	return g.resolver.Resolve(ctx, claims, allowed)
}

// Require returns a handler that admits only the given roles. The allow-list is
// fixed here, when the route is wired.
func (g *AccessGate) Require(roles ...domain.Role) fiber.Handler {
	allowed := domain.NewRoleSet(roles...)

	return func(c *fiber.Ctx) error {
		actor, err := g.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization), allowed)
		if err != nil {
			return g.reject(c, err)
		}
		c.Locals(actorKey, actor)
		return c.Next()
	}
}

func (g *AccessGate) reject(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidToken):
		g.logger.Debug("authentication rejected",
			zap.String("path", c.Path()),
			zap.String("reason", InvalidTokenReason(err)))
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return apperrors.NewUnauthorized(ErrInvalidToken.Error())
	case errors.Is(err, ErrForbidden):
		return apperrors.NewForbidden(ErrForbidden.Error())
	case errors.Is(err, ErrRoleNotFound):
		g.logger.Warn("endpoint allows a role with no identity variant", zap.String("path", c.Path()))
		return apperrors.NewBadRequest("ROLE_NOT_FOUND", ErrRoleNotFound.Error())
	default:
		return apperrors.NewInternalError(err)
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", invalidToken(ReasonMissing, nil)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", invalidToken(ReasonMalformed, nil)
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", invalidToken(ReasonMissing, nil)
	}
	return token, nil
}

// ActorFromContext retrieves the authenticated actor.
func ActorFromContext(c *fiber.Ctx) (*Actor, bool) {
	val := c.Locals(actorKey)
	if val == nil {
		return nil, false
	}
	actor, ok := val.(*Actor)
	return actor, ok
}
