package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

type memUniversities struct {
	rows map[int64]*domain.University
}

func (m *memUniversities) Create(_ context.Context, u *domain.University) error {
	u.ID = int64(len(m.rows) + 1)
	m.rows[u.ID] = u
	return nil
}

func (m *memUniversities) Update(_ context.Context, u *domain.University) error {
	if _, ok := m.rows[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.rows[u.ID] = u
	return nil
}

func (m *memUniversities) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memUniversities) GetByID(_ context.Context, id int64) (*domain.University, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUniversities) List(context.Context) ([]domain.University, error) {
	out := make([]domain.University, 0, len(m.rows))
	for _, u := range m.rows {
		out = append(out, *u)
	}
	return out, nil
}

func newCampusFixture(t *testing.T) *CampusService {
	t.Helper()
	svc := NewCampusService(&memUniversities{rows: map[int64]*domain.University{}}, &memPosts{rows: map[int64]*domain.Post{}})
	ctx := context.Background()
	for _, name := range []string{"North", "South"} {
		_, err := svc.CreateUniversity(ctx, UniversityInput{Name: name})
		require.NoError(t, err)
	}
	return svc
}

func TestCreatePostRequiresUniversity(t *testing.T) {
	svc := newCampusFixture(t)

	_, err := svc.CreatePost(context.Background(), PostInput{Title: "Hello", UniversityID: 9})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	_, err = svc.CreatePost(context.Background(), PostInput{Title: " "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestListPostsScopesStudentsToTheirUniversity(t *testing.T) {
	svc := newCampusFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, PostInput{Title: "North news", UniversityID: 1})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, PostInput{Title: "South news", UniversityID: 2})
	require.NoError(t, err)

	north := int64(1)
	student := studentActor(&domain.Student{ID: 5, UniversityID: &north})
	south := int64(2)

	posts, err := svc.ListPosts(ctx, student, &south, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "North news", posts[0].Title)

	unaffiliated := studentActor(&domain.Student{ID: 6})
	posts, err = svc.ListPosts(ctx, unaffiliated, nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)

	admin := &auth.Actor{Role: domain.RoleAdmin, Identity: &domain.Admin{ID: 1}}
	posts, err = svc.ListPosts(ctx, admin, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
