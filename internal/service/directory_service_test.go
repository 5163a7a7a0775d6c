package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

func newDirectoryFixture(t *testing.T) (*DirectoryService, *memStudents, *auth.Hasher) {
	t.Helper()
	hasher, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	students := newMemStudents()
	return NewDirectoryService(DirectoryDependencies{StudentRepo: students, Hasher: hasher}), students, hasher
}

func studentActor(s *domain.Student) *auth.Actor {
	return &auth.Actor{Role: domain.RoleStudent, Identity: s}
}

func TestRegisterStudent(t *testing.T) {
	svc, _, hasher := newDirectoryFixture(t)
	ctx := context.Background()

	student, err := svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{
		Name: " Ada ", Email: "Ada@Uni.edu", Password: "s3cret!",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Ada", student.Name)
	assert.Equal(t, "ada@uni.edu", student.Email)
	assert.NotEqual(t, "s3cret!", student.PasswordHash)
	ok, err := hasher.Verify(student.PasswordHash, "s3cret!")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{
		Name: "Other", Email: "ada@uni.edu", Password: "s3cret!",
	}})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	_, err = svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{Email: "bad", Password: "x"}})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Contains(t, de.Details, "name")
	assert.Contains(t, de.Details, "email")
	assert.Contains(t, de.Details, "password")
}

func TestStudentRecordsAreSelfOnly(t *testing.T) {
	svc, _, _ := newDirectoryFixture(t)
	ctx := context.Background()

	ada, err := svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{Name: "Ada", Email: "ada@uni.edu", Password: "s3cret!"}})
	require.NoError(t, err)
	bob, err := svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{Name: "Bob", Email: "bob@uni.edu", Password: "s3cret!"}})
	require.NoError(t, err)

	got, err := svc.GetStudent(ctx, studentActor(ada), ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@uni.edu", got.Email)

	_, err = svc.GetStudent(ctx, studentActor(ada), bob.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	admin := &auth.Actor{Role: domain.RoleAdmin, Identity: &domain.Admin{ID: ada.ID}}
	got, err = svc.GetStudent(ctx, admin, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@uni.edu", got.Email)

	// a professor sharing the student's numeric id is still someone else
	prof := &auth.Actor{Role: domain.RoleProfessor, Identity: &domain.Professor{ID: ada.ID}}
	_, err = svc.GetStudent(ctx, prof, ada.ID)
	require.Error(t, err)
}

func TestUpdateStudentKeepsHashWithoutPassword(t *testing.T) {
	svc, students, _ := newDirectoryFixture(t)
	ctx := context.Background()

	ada, err := svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{Name: "Ada", Email: "ada@uni.edu", Password: "s3cret!"}})
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(ctx, studentActor(ada), ada.ID, StudentInput{PersonInput: PersonInput{
		Name: "Ada L", Email: "ada@uni.edu", Phone: "555",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Ada L", updated.Name)

	stored, err := students.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.PasswordHash, stored.PasswordHash)
	assert.Equal(t, "555", stored.Phone)
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc, _, _ := newDirectoryFixture(t)

	err := svc.DeleteStudent(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestOverlongPasswordIsValidationError(t *testing.T) {
	svc, _, _ := newDirectoryFixture(t)
	ctx := context.Background()
	long := strings.Repeat("a", 80)

	_, err := svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{
		Name: "Ada", Email: "ada@uni.edu", Password: long,
	}})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, 400, de.HTTPStatus)
	assert.Contains(t, de.Details, "password")

	ada, err := svc.RegisterStudent(ctx, StudentInput{PersonInput: PersonInput{
		Name: "Ada", Email: "ada@uni.edu", Password: "s3cret!",
	}})
	require.NoError(t, err)

	_, err = svc.UpdateStudent(ctx, studentActor(ada), ada.ID, StudentInput{PersonInput: PersonInput{
		Name: "Ada", Email: "ada@uni.edu", Password: long,
	}})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
