package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

func requireActor(c *fiber.Ctx) (*auth.Actor, error) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return actor, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func parseOptionalID(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewValidationError("invalid "+key, map[string]any{key: raw})
	}
	return &id, nil
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// pageParams reads page/page_size and returns limit and offset.
func pageParams(c *fiber.Ctx) (int, int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

func studentResponse(s *domain.Student) dto.StudentResponse {
	return dto.StudentResponse{
		PersonResponse: dto.PersonResponse{
			ID:           s.ID,
			Role:         string(domain.RoleStudent),
			Name:         s.Name,
			Email:        s.Email,
			Phone:        s.Phone,
			UniversityID: s.UniversityID,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		},
		DepartmentID: s.DepartmentID,
		LevelID:      s.LevelID,
	}
}

func professorResponse(p *domain.Professor) dto.PersonResponse {
	return dto.PersonResponse{
		ID:           p.ID,
		Role:         string(domain.RoleProfessor),
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		UniversityID: p.UniversityID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func adminResponse(a *domain.Admin) dto.PersonResponse {
	return dto.PersonResponse{
		ID:           a.ID,
		Role:         string(domain.RoleAdmin),
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		UniversityID: a.UniversityID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
