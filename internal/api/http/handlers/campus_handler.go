package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
)

// CampusHandler manages university and post endpoints.
type CampusHandler struct {
	service *service.CampusService
}

// NewCampusHandler constructs handler.
func NewCampusHandler(campus *service.CampusService) *CampusHandler {
	return &CampusHandler{service: campus}
}

func universityResponse(u *domain.University) dto.UniversityResponse {
	return dto.UniversityResponse{
		ID:        u.ID,
		Name:      u.Name,
		Location:  u.Location,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func postResponse(p *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		UniversityID: p.UniversityID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func universityInput(req dto.UniversityRequest) service.UniversityInput {
	return service.UniversityInput{Name: req.Name, Location: req.Location, Email: req.Email, Phone: req.Phone}
}

func postInput(req dto.PostRequest) service.PostInput {
	return service.PostInput{Title: req.Title, Description: req.Description, UniversityID: req.UniversityID}
}

// ListUniversities GET /universities.
func (h *CampusHandler) ListUniversities(c *fiber.Ctx) error {
	universities, err := h.service.ListUniversities(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UniversityResponse, 0, len(universities))
	for i := range universities {
		items = append(items, universityResponse(&universities[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateUniversity POST /universities.
func (h *CampusHandler) CreateUniversity(c *fiber.Ctx) error {
	var req dto.UniversityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	uni, err := h.service.CreateUniversity(c.UserContext(), universityInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": universityResponse(uni)})
}

// UpdateUniversity PUT /universities/:id.
func (h *CampusHandler) UpdateUniversity(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UniversityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	uni, err := h.service.UpdateUniversity(c.UserContext(), id, universityInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": universityResponse(uni)})
}

// DeleteUniversity DELETE /universities/:id.
func (h *CampusHandler) DeleteUniversity(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteUniversity(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListPosts GET /posts?university_id=.
func (h *CampusHandler) ListPosts(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	universityID, err := parseOptionalID(c, "university_id")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)
	posts, err := h.service.ListPosts(c.UserContext(), actor, universityID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, postResponse(&posts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePost POST /posts.
func (h *CampusHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	post, err := h.service.CreatePost(c.UserContext(), postInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": postResponse(post)})
}

// UpdatePost PUT /posts/:id.
func (h *CampusHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.PostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	post, err := h.service.UpdatePost(c.UserContext(), id, postInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postResponse(post)})
}

// DeletePost DELETE /posts/:id.
func (h *CampusHandler) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeletePost(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
