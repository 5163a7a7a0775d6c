package service

import (
	"context"
	"strings"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// CampusService manages universities and their post feeds.
type CampusService struct {
	universities repository.UniversityRepository
	posts        repository.PostRepository
}

// UniversityInput describes university create/update payloads.
type UniversityInput struct {
	Name     string
	Location string
	Email    string
	Phone    string
}

// PostInput describes post create/update payloads.
type PostInput struct {
	Title        string
	Description  string
	UniversityID int64
}

// NewCampusService constructs the service.
func NewCampusService(universities repository.UniversityRepository, posts repository.PostRepository) *CampusService {
	return &CampusService{universities: universities, posts: posts}
}

func (in *UniversityInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = domain.NormalizeEmail(in.Email)
	if in.Name == "" {
		return apperrors.NewValidationError("invalid payload", map[string]any{"name": "required"})
	}
	return nil
}

// CreateUniversity registers a university.
func (s *CampusService) CreateUniversity(ctx context.Context, input UniversityInput) (*domain.University, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	uni := &domain.University{
		Name:     input.Name,
		Location: strings.TrimSpace(input.Location),
		Email:    input.Email,
		Phone:    strings.TrimSpace(input.Phone),
	}
	if err := s.universities.Create(ctx, uni); err != nil {
		return nil, writeError(err, input.Email)
	}
	return uni, nil
}

// UpdateUniversity replaces a university's details.
func (s *CampusService) UpdateUniversity(ctx context.Context, id int64, input UniversityInput) (*domain.University, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	uni := &domain.University{
		ID:       id,
		Name:     input.Name,
		Location: strings.TrimSpace(input.Location),
		Email:    input.Email,
		Phone:    strings.TrimSpace(input.Phone),
	}
	if err := s.universities.Update(ctx, uni); err != nil {
		return nil, writeError(err, input.Email)
	}
	return uni, nil
}

// DeleteUniversity removes a university.
func (s *CampusService) DeleteUniversity(ctx context.Context, id int64) error {
	return apperrors.MapError(s.universities.Delete(ctx, id))
}

// ListUniversities returns every university.
func (s *CampusService) ListUniversities(ctx context.Context) ([]domain.University, error) {
	return s.universities.List(ctx)
}

func (in *PostInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	details := map[string]any{}
	if in.Title == "" {
		details["title"] = "required"
	}
	if in.UniversityID <= 0 {
		details["university_id"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid payload", details)
	}
	return nil
}

// CreatePost publishes a post to a university feed.
func (s *CampusService) CreatePost(ctx context.Context, input PostInput) (*domain.Post, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, err := s.universities.GetByID(ctx, input.UniversityID); err != nil {
		return nil, apperrors.MapError(err)
	}
	post := &domain.Post{
		Title:        input.Title,
		Description:  input.Description,
		UniversityID: input.UniversityID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperrors.MapError(err)
	}
	return post, nil
}

// UpdatePost edits a post.
func (s *CampusService) UpdatePost(ctx context.Context, id int64, input PostInput) (*domain.Post, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, err := s.universities.GetByID(ctx, input.UniversityID); err != nil {
		return nil, apperrors.MapError(err)
	}
	post := &domain.Post{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		UniversityID: input.UniversityID,
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, apperrors.MapError(err)
	}
	return post, nil
}

// DeletePost removes a post.
func (s *CampusService) DeletePost(ctx context.Context, id int64) error {
	return apperrors.MapError(s.posts.Delete(ctx, id))
}

// ListPosts returns posts. Students only see their own university's feed.
func (s *CampusService) ListPosts(ctx context.Context, actor *auth.Actor, universityID *int64, limit, offset int) ([]domain.Post, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if student, ok := actor.Student(); ok {
		if student.UniversityID == nil {
			return []domain.Post{}, nil
		}
		universityID = student.UniversityID
	}
	return s.posts.List(ctx, universityID, limit, offset)
}
