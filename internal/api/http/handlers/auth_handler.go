package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// AuthHandler exposes the per-role login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login returns the handler for POST /auth/login/<role>.
func (h *AuthHandler) Login(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		if req.Email == "" || req.Password == "" {
			return apperrors.NewValidationError("email and password required", nil)
		}

		token, err := h.auth.Login(c.UserContext(), role, req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(dto.TokenResponse{
			AccessToken: token.AccessToken,
			TokenType:   token.TokenType,
			ExpiresAt:   token.ExpiresAt,
		})
	}
}
