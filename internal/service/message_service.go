package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

const maxSubjectLength = 255

// StudentFinder looks up a student by id.
type StudentFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
}

// MessageService delivers admin messages to students.
type MessageService struct {
	messages repository.MessageRepository
	students StudentFinder
	events   publisher
}

// MessageDependencies bundles collaborators for the message service.
type MessageDependencies struct {
	MessageRepo repository.MessageRepository
	Students    StudentFinder
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// SendMessageInput is the payload for a new message.
type SendMessageInput struct {
	StudentID int64
	Subject   string
	Content   string
}

// NewMessageService constructs the service.
func NewMessageService(deps MessageDependencies) *MessageService {
	return &MessageService{
		messages: deps.MessageRepo,
		students: deps.Students,
		events:   newPublisher(deps.Dispatcher, deps.Logger),
	}
}

func (in *SendMessageInput) validate() error {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Content = strings.TrimSpace(in.Content)
	details := map[string]any{}
	if in.StudentID <= 0 {
		details["student_id"] = "required"
	}
	switch {
	case in.Subject == "":
		details["subject"] = "required"
	case utf8.RuneCountInString(in.Subject) > maxSubjectLength:
		details["subject"] = "at most 255 characters"
	}
	if in.Content == "" {
		details["content"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid payload", details)
	}
	return nil
}

// Send stores a message from the acting admin to a student.
func (s *MessageService) Send(ctx context.Context, actor *auth.Actor, input SendMessageInput) (*domain.Message, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	admin, ok := actor.Admin()
	if !ok {
		return nil, apperrors.NewForbidden("only admins may send messages")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, err := s.students.GetByID(ctx, input.StudentID); err != nil {
		return nil, apperrors.MapError(err)
	}

	adminID := admin.ID
	msg := &domain.Message{
		AdminID:   &adminID,
		StudentID: input.StudentID,
		Subject:   input.Subject,
		Content:   input.Content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.events.publish(ctx, events.Event{
		Type:    events.EventMessageSent,
		Actor:   identityActor(admin),
		Payload: events.MessageSentPayload{MessageID: msg.ID, StudentID: msg.StudentID, Subject: msg.Subject},
	})
	return msg, nil
}

// List pages through every message, newest first.
func (s *MessageService) List(ctx context.Context, limit, offset int) ([]domain.Message, error) {
	return s.messages.List(ctx, nil, limit, offset)
}

// ListForStudent returns the acting student's own messages.
func (s *MessageService) ListForStudent(ctx context.Context, actor *auth.Actor, limit, offset int) ([]domain.Message, error) {
	student, err := requireStudent(actor)
	if err != nil {
		return nil, err
	}
	studentID := student.ID
	return s.messages.List(ctx, &studentID, limit, offset)
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return apperrors.MapError(s.messages.Delete(ctx, id))
}
