package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
)

// EngagementHandler serves the rate-limited student endpoints: comments and feedback.
type EngagementHandler struct {
	comments *service.CommentService
	feedback *service.FeedbackService
}

// NewEngagementHandler constructs handler.
func NewEngagementHandler(comments *service.CommentService, feedback *service.FeedbackService) *EngagementHandler {
	return &EngagementHandler{comments: comments, feedback: feedback}
}

func commentResponse(cm *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        cm.ID,
		PostID:    cm.PostID,
		StudentID: cm.StudentID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}

func feedbackResponse(f *domain.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:        f.ID,
		StudentID: f.StudentID,
		Title:     f.Title,
		Content:   f.Content,
		CreatedAt: f.CreatedAt,
	}
}

// CreateComment POST /comments.
func (h *EngagementHandler) CreateComment(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	comment, err := h.comments.Create(c.UserContext(), actor, service.CreateCommentInput{
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}

// ListComments GET /comments?post_id=.
func (h *EngagementHandler) ListComments(c *fiber.Ctx) error {
	postID, err := parseOptionalID(c, "post_id")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)
	comments, err := h.comments.List(c.UserContext(), postID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, commentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateFeedback POST /feedback.
func (h *EngagementHandler) CreateFeedback(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.FeedbackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	feedback, err := h.feedback.Create(c.UserContext(), actor, service.CreateFeedbackInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": feedbackResponse(feedback)})
}

// ListFeedback GET /feedback.
func (h *EngagementHandler) ListFeedback(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	entries, err := h.feedback.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		items = append(items, feedbackResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteFeedback DELETE /feedback/:id.
func (h *EngagementHandler) DeleteFeedback(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.feedback.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
