package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// AcademicService manages departments and levels of study.
type AcademicService struct {
	departments  repository.DepartmentRepository
	levels       repository.LevelRepository
	universities repository.UniversityRepository
}

// DepartmentInput describes department create/update payloads.
type DepartmentInput struct {
	Name         string
	UniversityID *int64
}

// LevelInput describes level create/update payloads.
type LevelInput struct {
	Name string
}

// NewAcademicService constructs the service.
func NewAcademicService(departments repository.DepartmentRepository, levels repository.LevelRepository, universities repository.UniversityRepository) *AcademicService {
	return &AcademicService{departments: departments, levels: levels, universities: universities}
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("invalid payload", map[string]any{"name": "required"})
	}
	return name, nil
}

func (s *AcademicService) department(ctx context.Context, id int64, input DepartmentInput) (*domain.Department, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}
	if input.UniversityID != nil {
		if _, err := s.universities.GetByID(ctx, *input.UniversityID); err != nil {
			return nil, apperrors.MapError(err)
		}
	}
	return &domain.Department{ID: id, Name: name, UniversityID: input.UniversityID}, nil
}

// CreateDepartment adds a department, optionally under a university.
func (s *AcademicService) CreateDepartment(ctx context.Context, input DepartmentInput) (*domain.Department, error) {
	dept, err := s.department(ctx, 0, input)
	if err != nil {
		return nil, err
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// UpdateDepartment replaces a department's details.
func (s *AcademicService) UpdateDepartment(ctx context.Context, id int64, input DepartmentInput) (*domain.Department, error) {
	dept, err := s.department(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// DeleteDepartment removes a department.
func (s *AcademicService) DeleteDepartment(ctx context.Context, id int64) error {
	return apperrors.MapError(s.departments.Delete(ctx, id))
}

// ListDepartments returns departments, optionally for one university.
func (s *AcademicService) ListDepartments(ctx context.Context, universityID *int64) ([]domain.Department, error) {
	return s.departments.List(ctx, universityID)
}

func levelWriteError(err error, name string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperrors.NewConflict("level already exists", map[string]any{"name": name})
	}
	return apperrors.MapError(err)
}

// CreateLevel adds a level of study.
func (s *AcademicService) CreateLevel(ctx context.Context, input LevelInput) (*domain.Level, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}
	level := &domain.Level{Name: name}
	if err := s.levels.Create(ctx, level); err != nil {
		return nil, levelWriteError(err, name)
	}
	return level, nil
}

// UpdateLevel renames a level.
func (s *AcademicService) UpdateLevel(ctx context.Context, id int64, input LevelInput) (*domain.Level, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}
	level := &domain.Level{ID: id, Name: name}
	if err := s.levels.Update(ctx, level); err != nil {
		return nil, levelWriteError(err, name)
	}
	return level, nil
}

// DeleteLevel removes a level.
func (s *AcademicService) DeleteLevel(ctx context.Context, id int64) error {
	return apperrors.MapError(s.levels.Delete(ctx, id))
}

// ListLevels returns every level.
func (s *AcademicService) ListLevels(ctx context.Context) ([]domain.Level, error) {
	return s.levels.List(ctx)
}
