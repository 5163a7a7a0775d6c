package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// ReactionService records student reactions on posts.
type ReactionService struct {
	reactions repository.ReactionRepository
	posts     repository.PostRepository
}

// ReactInput is the payload for a new reaction.
type ReactInput struct {
	PostID int64
	Kind   domain.ReactionKind
}

// NewReactionService constructs the service.
func NewReactionService(reactions repository.ReactionRepository, posts repository.PostRepository) *ReactionService {
	return &ReactionService{reactions: reactions, posts: posts}
}

// React adds the acting student's reaction to a post. Repeating the same kind
// on the same post is a conflict.
func (s *ReactionService) React(ctx context.Context, actor *auth.Actor, input ReactInput) (*domain.Reaction, error) {
	student, err := requireStudent(actor)
	if err != nil {
		return nil, err
	}
	input.Kind = domain.ReactionKind(strings.ToLower(strings.TrimSpace(string(input.Kind))))
	details := map[string]any{}
	if input.PostID <= 0 {
		details["post_id"] = "required"
	}
	if !input.Kind.Valid() {
		details["kind"] = "one of like, celebrate, sad"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid payload", details)
	}
	if _, err := s.posts.GetByID(ctx, input.PostID); err != nil {
		return nil, apperrors.MapError(err)
	}

	reaction := &domain.Reaction{PostID: input.PostID, StudentID: student.ID, Kind: input.Kind}
	if err := s.reactions.Create(ctx, reaction); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("reaction already recorded", map[string]any{
				"post_id": input.PostID,
				"kind":    string(input.Kind),
			})
		}
		return nil, apperrors.MapError(err)
	}
	return reaction, nil
}

// List pages through reactions, optionally for one post.
func (s *ReactionService) List(ctx context.Context, postID *int64, limit, offset int) ([]domain.Reaction, error) {
	return s.reactions.List(ctx, postID, limit, offset)
}

// Count tallies a post's reactions per kind.
func (s *ReactionService) Count(ctx context.Context, postID int64) (domain.ReactionCount, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return domain.ReactionCount{}, apperrors.MapError(err)
	}
	return s.reactions.CountByPost(ctx, postID)
}
