package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
	"github.com/Favour-325/campusly-myjfn2/internal/ratelimit"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// FeedbackService handles student feedback for administrators.
type FeedbackService struct {
	feedback repository.FeedbackRepository
	limiter  ActionLimiter
	events   publisher
	logger   *zap.Logger
}

// FeedbackDependencies bundles collaborators for the feedback service.
type FeedbackDependencies struct {
	FeedbackRepo repository.FeedbackRepository
	Limiter      ActionLimiter
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// CreateFeedbackInput is the payload for new feedback.
type CreateFeedbackInput struct {
	Title   string
	Content string
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		feedback: deps.FeedbackRepo,
		limiter:  limiterOrNone(deps.Limiter),
		events:   newPublisher(deps.Dispatcher, logger),
		logger:   logger,
	}
}

// Create stores feedback for the acting student once the feedback window admits it.
func (s *FeedbackService) Create(ctx context.Context, actor *auth.Actor, input CreateFeedbackInput) (*domain.Feedback, error) {
	student, err := requireStudent(actor)
	if err != nil {
		return nil, err
	}
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	details := map[string]any{}
	if input.Title == "" {
		details["title"] = "required"
	}
	if input.Content == "" {
		details["content"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid payload", details)
	}

	if err := admit(ctx, s.limiter, student.ID, ratelimit.EventFeedback); err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		StudentID: student.ID,
		Title:     input.Title,
		Content:   input.Content,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, apperrors.MapError(err)
	}
	record(ctx, s.limiter, s.logger, student.ID, ratelimit.EventFeedback)

	s.events.publish(ctx, events.Event{
		Type:    events.EventFeedbackCreated,
		Actor:   identityActor(student),
		Payload: events.FeedbackCreatedPayload{FeedbackID: feedback.ID, Title: feedback.Title},
	})
	return feedback, nil
}

// List pages through feedback, newest first.
func (s *FeedbackService) List(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	return s.feedback.List(ctx, limit, offset)
}

// Delete removes a feedback entry.
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return apperrors.MapError(s.feedback.Delete(ctx, id))
}
