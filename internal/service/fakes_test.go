package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
	"github.com/Favour-325/campusly-myjfn2/internal/ratelimit"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
)

type memStudents struct {
	mu   sync.Mutex
	rows map[int64]*domain.Student
	next int64
}

func newMemStudents() *memStudents { return &memStudents{rows: map[int64]*domain.Student{}} }

func (m *memStudents) Create(_ context.Context, s *domain.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Email == s.Email {
			return repository.ErrDuplicate
		}
	}
	m.next++
	s.ID = m.next
	s.CreatedAt = time.Now()
	copied := *s
	m.rows[s.ID] = &copied
	return nil
}

func (m *memStudents) Update(_ context.Context, s *domain.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[s.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *s
	m.rows[s.ID] = &copied
	return nil
}

func (m *memStudents) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memStudents) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *s
	return &copied, nil
}

func (m *memStudents) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.rows {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStudents) List(_ context.Context, _, _ int) ([]domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Student, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, *s)
	}
	return out, nil
}

type memProfessors struct {
	rows map[string]*domain.Professor
}

func (m *memProfessors) GetByEmail(_ context.Context, email string) (*domain.Professor, error) {
	if p, ok := m.rows[email]; ok {
		return p, nil
	}
	return nil, pgx.ErrNoRows
}

type memAdmins struct {
	rows map[string]*domain.Admin
}

func (m *memAdmins) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	if a, ok := m.rows[email]; ok {
		return a, nil
	}
	return nil, pgx.ErrNoRows
}

type memPosts struct {
	rows map[int64]*domain.Post
}

func (m *memPosts) Create(_ context.Context, p *domain.Post) error {
	p.ID = int64(len(m.rows) + 1)
	m.rows[p.ID] = p
	return nil
}

func (m *memPosts) Update(_ context.Context, p *domain.Post) error {
	if _, ok := m.rows[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.rows[p.ID] = p
	return nil
}

func (m *memPosts) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memPosts) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (m *memPosts) List(_ context.Context, universityID *int64, _, _ int) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range m.rows {
		if universityID == nil || p.UniversityID == *universityID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// memActions stores comments and feedback and doubles as the rate EventLog,
// counting the stored rows the way the Postgres backend does.
type memActions struct {
	mu       sync.Mutex
	comments []domain.Comment
	feedback []domain.Feedback
}

func (m *memActions) Create(_ context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = int64(len(m.comments) + 1)
	c.CreatedAt = time.Now()
	m.comments = append(m.comments, *c)
	return nil
}

func (m *memActions) ListByPost(_ context.Context, postID *int64, _, _ int) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, c := range m.comments {
		if postID == nil || c.PostID == *postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memActions) CountSince(_ context.Context, subjectID int64, kind ratelimit.EventKind, windowStart time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	switch kind {
	case ratelimit.EventComment:
		for _, c := range m.comments {
			if c.StudentID == subjectID && !c.CreatedAt.Before(windowStart) {
				count++
			}
		}
	case ratelimit.EventFeedback:
		for _, f := range m.feedback {
			if f.StudentID == subjectID && !f.CreatedAt.Before(windowStart) {
				count++
			}
		}
	}
	return count, nil
}

type memFeedback struct {
	*memActions
}

func (m memFeedback) Create(_ context.Context, f *domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.ID = int64(len(m.feedback) + 1)
	f.CreatedAt = time.Now()
	m.feedback = append(m.feedback, *f)
	return nil
}

func (m memFeedback) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.feedback {
		if f.ID == id {
			m.feedback = append(m.feedback[:i], m.feedback[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m memFeedback) List(_ context.Context, _, _ int) ([]domain.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Feedback{}, m.feedback...), nil
}

type recordedEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordedEvents) handler(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordedEvents) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newRecordingDispatcher() (events.Dispatcher, *recordedEvents) {
	dispatcher := events.NewInMemoryDispatcher()
	rec := &recordedEvents{}
	for _, t := range []events.EventType{events.EventLoginSucceeded, events.EventCommentCreated, events.EventFeedbackCreated, events.EventMessageSent} {
		dispatcher.Subscribe(t, rec.handler)
	}
	return dispatcher, rec
}
