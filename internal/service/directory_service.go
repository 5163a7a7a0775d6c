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

// DirectoryService manages student, professor and admin records.
type DirectoryService struct {
	students   repository.StudentRepository
	professors repository.ProfessorRepository
	admins     repository.AdminRepository
	hasher     *auth.Hasher
}

// DirectoryDependencies bundles repositories for the directory service.
type DirectoryDependencies struct {
	StudentRepo   repository.StudentRepository
	ProfessorRepo repository.ProfessorRepository
	AdminRepo     repository.AdminRepository
	Hasher        *auth.Hasher
}

// PersonInput carries the fields shared by every identity variant. An empty
// Password on update keeps the stored hash.
type PersonInput struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	UniversityID *int64
}

// StudentInput describes student create/update payloads.
type StudentInput struct {
	PersonInput
	DepartmentID *int64
	LevelID      *int64
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		students:   deps.StudentRepo,
		professors: deps.ProfessorRepo,
		admins:     deps.AdminRepo,
		hasher:     deps.Hasher,
	}
}

func (in *PersonInput) validate(requirePassword bool) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = domain.NormalizeEmail(in.Email)
	details := map[string]any{}
	if in.Name == "" {
		details["name"] = "required"
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		details["email"] = "valid email required"
	}
	switch {
	case len(in.Password) > auth.MaxPasswordBytes:
		details["password"] = "at most 72 bytes"
	case requirePassword && len(in.Password) < 6:
		details["password"] = "at least 6 characters"
	case !requirePassword && in.Password != "" && len(in.Password) < 6:
		details["password"] = "at least 6 characters"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid payload", details)
	}
	return nil
}

func (s *DirectoryService) hashIfSet(password, current string) (string, error) {
	if password == "" {
		return current, nil
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", apperrors.MapError(err)
	}
	return hash, nil
}

func writeError(err error, email string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict("email already registered", map[string]any{"email": email})
	case errors.Is(err, repository.ErrMissingReference):
		return apperrors.NewValidationError("unknown university, department or level", nil)
	}
	return apperrors.MapError(err)
}

// requireSelf lets admins through and restricts other roles to their own record.
func requireSelf(actor *auth.Actor, role domain.Role, id int64) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role != role || actor.ID() != id {
		return apperrors.NewForbidden("operation not permitted")
	}
	return nil
}

// RegisterStudent creates a student account.
func (s *DirectoryService) RegisterStudent(ctx context.Context, input StudentInput) (*domain.Student, error) {
	if err := input.validate(true); err != nil {
		return nil, err
	}
	hash, err := s.hashIfSet(input.Password, "")
	if err != nil {
		return nil, err
	}
	student := &domain.Student{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		UniversityID: input.UniversityID,
		DepartmentID: input.DepartmentID,
		LevelID:      input.LevelID,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, writeError(err, input.Email)
	}
	return student, nil
}

// GetStudent fetches a student visible to the actor.
func (s *DirectoryService) GetStudent(ctx context.Context, actor *auth.Actor, id int64) (*domain.Student, error) {
	if err := requireSelf(actor, domain.RoleStudent, id); err != nil {
		return nil, err
	}
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return student, nil
}

// UpdateStudent modifies a student record.
func (s *DirectoryService) UpdateStudent(ctx context.Context, actor *auth.Actor, id int64, input StudentInput) (*domain.Student, error) {
	if err := requireSelf(actor, domain.RoleStudent, id); err != nil {
		return nil, err
	}
	if err := input.validate(false); err != nil {
		return nil, err
	}
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	hash, err := s.hashIfSet(input.Password, student.PasswordHash)
	if err != nil {
		return nil, err
	}
	student.Name = input.Name
	student.Email = input.Email
	student.Phone = strings.TrimSpace(input.Phone)
	student.PasswordHash = hash
	student.UniversityID = input.UniversityID
	student.DepartmentID = input.DepartmentID
	student.LevelID = input.LevelID
	if err := s.students.Update(ctx, student); err != nil {
		return nil, writeError(err, input.Email)
	}
	return student, nil
}

// DeleteStudent removes a student.
func (s *DirectoryService) DeleteStudent(ctx context.Context, id int64) error {
	return apperrors.MapError(s.students.Delete(ctx, id))
}

// ListStudents pages through students.
func (s *DirectoryService) ListStudents(ctx context.Context, limit, offset int) ([]domain.Student, error) {
	return s.students.List(ctx, limit, offset)
}

// CreateProfessor creates a professor account.
func (s *DirectoryService) CreateProfessor(ctx context.Context, input PersonInput) (*domain.Professor, error) {
	if err := input.validate(true); err != nil {
		return nil, err
	}
	hash, err := s.hashIfSet(input.Password, "")
	if err != nil {
		return nil, err
	}
	professor := &domain.Professor{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		UniversityID: input.UniversityID,
	}
	if err := s.professors.Create(ctx, professor); err != nil {
		return nil, writeError(err, input.Email)
	}
	return professor, nil
}

// GetProfessor fetches a professor visible to the actor.
func (s *DirectoryService) GetProfessor(ctx context.Context, actor *auth.Actor, id int64) (*domain.Professor, error) {
	if err := requireSelf(actor, domain.RoleProfessor, id); err != nil {
		return nil, err
	}
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return professor, nil
}

// UpdateProfessor modifies a professor record.
func (s *DirectoryService) UpdateProfessor(ctx context.Context, id int64, input PersonInput) (*domain.Professor, error) {
	if err := input.validate(false); err != nil {
		return nil, err
	}
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	hash, err := s.hashIfSet(input.Password, professor.PasswordHash)
	if err != nil {
		return nil, err
	}
	professor.Name = input.Name
	professor.Email = input.Email
	professor.Phone = strings.TrimSpace(input.Phone)
	professor.PasswordHash = hash
	professor.UniversityID = input.UniversityID
	if err := s.professors.Update(ctx, professor); err != nil {
		return nil, writeError(err, input.Email)
	}
	return professor, nil
}

// DeleteProfessor removes a professor.
func (s *DirectoryService) DeleteProfessor(ctx context.Context, id int64) error {
	return apperrors.MapError(s.professors.Delete(ctx, id))
}

// ListProfessors pages through professors.
func (s *DirectoryService) ListProfessors(ctx context.Context, limit, offset int) ([]domain.Professor, error) {
	return s.professors.List(ctx, limit, offset)
}

// CreateAdmin creates an admin account.
func (s *DirectoryService) CreateAdmin(ctx context.Context, input PersonInput) (*domain.Admin, error) {
	if err := input.validate(true); err != nil {
		return nil, err
	}
	hash, err := s.hashIfSet(input.Password, "")
	if err != nil {
		return nil, err
	}
	admin := &domain.Admin{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		UniversityID: input.UniversityID,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, writeError(err, input.Email)
	}
	return admin, nil
}

// GetAdmin fetches an admin.
func (s *DirectoryService) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return admin, nil
}
