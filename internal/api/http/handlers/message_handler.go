package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/dto"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
)

// MessageHandler serves admin-to-student messages.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler constructs handler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{service: messages}
}

func messageResponse(m *domain.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID,
		AdminID:   m.AdminID,
		StudentID: m.StudentID,
		Subject:   m.Subject,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func messageList(messages []domain.Message) []dto.MessageResponse {
	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, messageResponse(&messages[i]))
	}
	return items
}

// Send POST /messages.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.MessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	msg, err := h.service.Send(c.UserContext(), actor, service.SendMessageInput{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Content:   req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": messageResponse(msg)})
}

// List GET /messages.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	messages, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": messageList(messages)})
}

// Inbox GET /messages/student.
func (h *MessageHandler) Inbox(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)
	messages, err := h.service.ListForStudent(c.UserContext(), actor, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": messageList(messages)})
}

// Delete DELETE /messages/:id.
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
