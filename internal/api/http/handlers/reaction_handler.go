package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// ReactionHandler serves post reactions.
type ReactionHandler struct {
	service *service.ReactionService
}

// NewReactionHandler constructs handler.
func NewReactionHandler(reactions *service.ReactionService) *ReactionHandler {
	return &ReactionHandler{service: reactions}
}

func reactionResponse(r *domain.Reaction) dto.ReactionResponse {
	return dto.ReactionResponse{
		ID:        r.ID,
		PostID:    r.PostID,
		StudentID: r.StudentID,
		Kind:      string(r.Kind),
		CreatedAt: r.CreatedAt,
	}
}

// React POST /reactions.
func (h *ReactionHandler) React(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.ReactionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	reaction, err := h.service.React(c.UserContext(), actor, service.ReactInput{
		PostID: req.PostID,
		Kind:   domain.ReactionKind(req.Kind),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": reactionResponse(reaction)})
}

// List GET /reactions?post_id=.
func (h *ReactionHandler) List(c *fiber.Ctx) error {
	postID, err := parseOptionalID(c, "post_id")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)
	reactions, err := h.service.List(c.UserContext(), postID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ReactionResponse, 0, len(reactions))
	for i := range reactions {
		items = append(items, reactionResponse(&reactions[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Count GET /reactions/count?post_id=.
func (h *ReactionHandler) Count(c *fiber.Ctx) error {
	postID, err := parseOptionalID(c, "post_id")
	if err != nil {
		return err
	}
	if postID == nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"post_id": "required"})
	}
	count, err := h.service.Count(c.UserContext(), *postID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ReactionCountResponse{
		PostID:    count.PostID,
		Like:      count.Like,
		Celebrate: count.Celebrate,
		Sad:       count.Sad,
	}})
}
