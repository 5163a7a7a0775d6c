package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
)

// AcademicHandler manages department and level endpoints.
type AcademicHandler struct {
	service *service.AcademicService
}

// NewAcademicHandler constructs handler.
func NewAcademicHandler(academic *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{service: academic}
}

func departmentResponse(d *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		UniversityID: d.UniversityID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func levelResponse(l *domain.Level) dto.LevelResponse {
	return dto.LevelResponse{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt, UpdatedAt: l.UpdatedAt}
}

// ListDepartments GET /departments?university_id=.
func (h *AcademicHandler) ListDepartments(c *fiber.Ctx) error {
	universityID, err := parseOptionalID(c, "university_id")
	if err != nil {
		return err
	}
	depts, err := h.service.ListDepartments(c.UserContext(), universityID)
	if err != nil {
		return err
	}
	items := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		items = append(items, departmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateDepartment POST /departments.
func (h *AcademicHandler) CreateDepartment(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.service.CreateDepartment(c.UserContext(), service.DepartmentInput{Name: req.Name, UniversityID: req.UniversityID})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": departmentResponse(dept)})
}

// UpdateDepartment PUT /departments/:id.
func (h *AcademicHandler) UpdateDepartment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.service.UpdateDepartment(c.UserContext(), id, service.DepartmentInput{Name: req.Name, UniversityID: req.UniversityID})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponse(dept)})
}

// DeleteDepartment DELETE /departments/:id.
func (h *AcademicHandler) DeleteDepartment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDepartment(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListLevels GET /levels.
func (h *AcademicHandler) ListLevels(c *fiber.Ctx) error {
	levels, err := h.service.ListLevels(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.LevelResponse, 0, len(levels))
	for i := range levels {
		items = append(items, levelResponse(&levels[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateLevel POST /levels.
func (h *AcademicHandler) CreateLevel(c *fiber.Ctx) error {
	var req dto.LevelRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	level, err := h.service.CreateLevel(c.UserContext(), service.LevelInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": levelResponse(level)})
}

// UpdateLevel PUT /levels/:id.
func (h *AcademicHandler) UpdateLevel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.LevelRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	level, err := h.service.UpdateLevel(c.UserContext(), id, service.LevelInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": levelResponse(level)})
}

// DeleteLevel DELETE /levels/:id.
func (h *AcademicHandler) DeleteLevel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteLevel(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
