package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
	"github.com/Favour-325/campusly-myjfn2/internal/ratelimit"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

const previewLength = 80

// CommentService creates and lists student comments.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	limiter  ActionLimiter
	events   publisher
	logger   *zap.Logger
}

// CommentDependencies bundles collaborators for the comment service.
type CommentDependencies struct {
	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Limiter     ActionLimiter
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// CreateCommentInput is the payload for a new comment.
type CreateCommentInput struct {
	PostID  int64
	Content string
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{
		comments: deps.CommentRepo,
		posts:    deps.PostRepo,
		limiter:  limiterOrNone(deps.Limiter),
		events:   newPublisher(deps.Dispatcher, logger),
		logger:   logger,
	}
}

// Create stores a comment for the acting student once the comment window admits it.
func (s *CommentService) Create(ctx context.Context, actor *auth.Actor, input CreateCommentInput) (*domain.Comment, error) {
	student, err := requireStudent(actor)
	if err != nil {
		return nil, err
	}
	input.Content = strings.TrimSpace(input.Content)
	details := map[string]any{}
	if input.PostID <= 0 {
		details["post_id"] = "required"
	}
	if input.Content == "" {
		details["content"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid payload", details)
	}

	if err := admit(ctx, s.limiter, student.ID, ratelimit.EventComment); err != nil {
		return nil, err
	}
	if _, err := s.posts.GetByID(ctx, input.PostID); err != nil {
		return nil, apperrors.MapError(err)
	}

	comment := &domain.Comment{
		PostID:    input.PostID,
		StudentID: student.ID,
		Content:   input.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}
	record(ctx, s.limiter, s.logger, student.ID, ratelimit.EventComment)

	s.events.publish(ctx, events.Event{
		Type:  events.EventCommentCreated,
		Actor: identityActor(student),
		Payload: events.CommentCreatedPayload{
			CommentID: comment.ID,
			PostID:    comment.PostID,
			Preview:   preview(comment.Content),
		},
	})
	return comment, nil
}

// List returns comments, optionally for a single post.
func (s *CommentService) List(ctx context.Context, postID *int64, limit, offset int) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID, limit, offset)
}

func requireStudent(actor *auth.Actor) (*domain.Student, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	student, ok := actor.Student()
	if !ok {
		return nil, apperrors.NewForbidden("only students may perform this action")
	}
	return student, nil
}

func preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewLength]) + "..."
}
