package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// DirectoryHandler manages student, professor and admin endpoints.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: directory}
}

func personInput(req dto.PersonRequest) service.PersonInput {
	return service.PersonInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		UniversityID: req.UniversityID,
	}
}

func studentInput(req dto.StudentRequest) service.StudentInput {
	return service.StudentInput{
		PersonInput:  personInput(req.PersonRequest),
		DepartmentID: req.DepartmentID,
		LevelID:      req.LevelID,
	}
}

// RegisterStudent POST /students.
func (h *DirectoryHandler) RegisterStudent(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	student, err := h.service.RegisterStudent(c.UserContext(), studentInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": studentResponse(student)})
}

// Me GET /students/me, /professors/me and /admins/me.
func (h *DirectoryHandler) Me(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	switch identity := actor.Identity.(type) {
	case *domain.Student:
		return c.JSON(fiber.Map{"data": studentResponse(identity)})
	case *domain.Professor:
		return c.JSON(fiber.Map{"data": professorResponse(identity)})
	case *domain.Admin:
		return c.JSON(fiber.Map{"data": adminResponse(identity)})
	default:
		return apperrors.NewInternalError(nil)
	}
}

// GetStudent GET /students/:id.
func (h *DirectoryHandler) GetStudent(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	student, err := h.service.GetStudent(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": studentResponse(student)})
}

// UpdateStudent PUT /students/:id.
func (h *DirectoryHandler) UpdateStudent(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.StudentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	student, err := h.service.UpdateStudent(c.UserContext(), actor, id, studentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": studentResponse(student)})
}

// DeleteStudent DELETE /students/:id.
func (h *DirectoryHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteStudent(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListStudents GET /students.
func (h *DirectoryHandler) ListStudents(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	students, err := h.service.ListStudents(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		items = append(items, studentResponse(&students[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateProfessor POST /professors.
func (h *DirectoryHandler) CreateProfessor(c *fiber.Ctx) error {
	var req dto.PersonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	professor, err := h.service.CreateProfessor(c.UserContext(), personInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": professorResponse(professor)})
}

// GetProfessor GET /professors/:id.
func (h *DirectoryHandler) GetProfessor(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	professor, err := h.service.GetProfessor(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professorResponse(professor)})
}

// UpdateProfessor PUT /professors/:id.
func (h *DirectoryHandler) UpdateProfessor(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.PersonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	professor, err := h.service.UpdateProfessor(c.UserContext(), id, personInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professorResponse(professor)})
}

// DeleteProfessor DELETE /professors/:id.
func (h *DirectoryHandler) DeleteProfessor(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProfessor(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListProfessors GET /professors.
func (h *DirectoryHandler) ListProfessors(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	professors, err := h.service.ListProfessors(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.PersonResponse, 0, len(professors))
	for i := range professors {
		items = append(items, professorResponse(&professors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateAdmin POST /admins.
func (h *DirectoryHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.PersonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	admin, err := h.service.CreateAdmin(c.UserContext(), personInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": adminResponse(admin)})
}

// GetAdmin GET /admins/:id.
func (h *DirectoryHandler) GetAdmin(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	admin, err := h.service.GetAdmin(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": adminResponse(admin)})
}
