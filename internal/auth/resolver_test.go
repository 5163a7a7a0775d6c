package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

type lookupStore[T any] struct {
	byEmail map[string]*T
	calls   int
	err     error
}

func (s *lookupStore[T]) GetByEmail(_ context.Context, email string) (*T, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return v, nil
}

type identityStores struct {
	students   *lookupStore[domain.Student]
	professors *lookupStore[domain.Professor]
	admins     *lookupStore[domain.Admin]
}

func (s identityStores) totalCalls() int {
	return s.students.calls + s.professors.calls + s.admins.calls
}

func newIdentityStores() identityStores {
	return identityStores{
		students: &lookupStore[domain.Student]{byEmail: map[string]*domain.Student{
			"stu@uni.edu": {ID: 1, Email: "stu@uni.edu", Name: "Stu"},
		}},
		professors: &lookupStore[domain.Professor]{byEmail: map[string]*domain.Professor{
			"prof@uni.edu": {ID: 2, Email: "prof@uni.edu", Name: "Prof"},
		}},
		admins: &lookupStore[domain.Admin]{byEmail: map[string]*domain.Admin{
			"admin@uni.edu": {ID: 3, Email: "admin@uni.edu", Name: "Admin"},
		}},
	}
}

func newTestResolver() (*IdentityResolver, identityStores) {
	stores := newIdentityStores()
	return NewIdentityResolver(stores.students, stores.professors, stores.admins), stores
}

func TestResolve_LoadsMatchingVariant(t *testing.T) {
	resolver, stores := newTestResolver()
	ctx := context.Background()
	all := domain.NewRoleSet(domain.Roles...)

	actor, err := resolver.Resolve(ctx, &Claims{SubjectEmail: "stu@uni.edu", Role: domain.RoleStudent}, all)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, actor.Role)
	assert.Equal(t, int64(1), actor.ID())
	student, ok := actor.Student()
	require.True(t, ok)
	assert.Equal(t, "Stu", student.Name)
	_, ok = actor.Admin()
	assert.False(t, ok)

	actor, err = resolver.Resolve(ctx, &Claims{SubjectEmail: "prof@uni.edu", Role: domain.RoleProfessor}, all)
	require.NoError(t, err)
	_, ok = actor.Professor()
	assert.True(t, ok)

	actor, err = resolver.Resolve(ctx, &Claims{SubjectEmail: "admin@uni.edu", Role: domain.RoleAdmin}, all)
	require.NoError(t, err)
	_, ok = actor.Admin()
	assert.True(t, ok)

	assert.Equal(t, 3, stores.totalCalls(), "exactly one lookup per resolve")
}

func TestResolve_ForbiddenBeforeLookup(t *testing.T) {
	resolver, stores := newTestResolver()
	adminOnly := domain.NewRoleSet(domain.RoleAdmin)

	for _, email := range []string{"stu@uni.edu", "ghost@uni.edu"} {
		_, err := resolver.Resolve(context.Background(), &Claims{SubjectEmail: email, Role: domain.RoleStudent}, adminOnly)
		require.ErrorIs(t, err, ErrForbidden, email)
	}
	assert.Zero(t, stores.totalCalls())
}

func TestResolve_UnknownRoleInTokenIsForbidden(t *testing.T) {
	resolver, stores := newTestResolver()

	_, err := resolver.Resolve(context.Background(),
		&Claims{SubjectEmail: "stu@uni.edu", Role: domain.Role("superuser")},
		domain.NewRoleSet(domain.Roles...))
	require.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, stores.totalCalls())
}

func TestResolve_RoleWithoutVariant(t *testing.T) {
	resolver, stores := newTestResolver()
	moderator := domain.Role("moderator")

	_, err := resolver.Resolve(context.Background(),
		&Claims{SubjectEmail: "stu@uni.edu", Role: moderator},
		domain.NewRoleSet(moderator))
	require.ErrorIs(t, err, ErrRoleNotFound)
	assert.Zero(t, stores.totalCalls())
}

func TestResolve_MissingSubjectIsInvalidToken(t *testing.T) {
	resolver, _ := newTestResolver()

	_, err := resolver.Resolve(context.Background(),
		&Claims{SubjectEmail: "ghost@uni.edu", Role: domain.RoleStudent},
		domain.NewRoleSet(domain.RoleStudent))
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, ReasonSubjectNotFound, InvalidTokenReason(err))
}

func TestResolve_RoleClaimMustMatchVariant(t *testing.T) {
	resolver, _ := newTestResolver()

	// A professor's email presented with a student role claim is not found among students.
	_, err := resolver.Resolve(context.Background(),
		&Claims{SubjectEmail: "prof@uni.edu", Role: domain.RoleStudent},
		domain.NewRoleSet(domain.RoleStudent, domain.RoleProfessor))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_StorageErrorsPropagate(t *testing.T) {
	resolver, stores := newTestResolver()
	boom := errors.New("connection reset")
	stores.admins.err = boom

	_, err := resolver.Resolve(context.Background(),
		&Claims{SubjectEmail: "admin@uni.edu", Role: domain.RoleAdmin},
		domain.NewRoleSet(domain.RoleAdmin))
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}
