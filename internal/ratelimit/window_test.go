package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memLog struct {
	clock  *fakeClock
	events map[EventKind]map[int64][]time.Time
	err    error
}

func newMemLog(clock *fakeClock) *memLog {
	return &memLog{clock: clock, events: map[EventKind]map[int64][]time.Time{}}
}

func (m *memLog) CountSince(_ context.Context, subjectID int64, kind EventKind, windowStart time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	now := m.clock.Now()
	count := 0
	for _, at := range m.events[kind][subjectID] {
		if !at.Before(windowStart) && !at.After(now) {
			count++
		}
	}
	return count, nil
}

func (m *memLog) Record(_ context.Context, subjectID int64, kind EventKind, at time.Time) error {
	if m.events[kind] == nil {
		m.events[kind] = map[int64][]time.Time{}
	}
	m.events[kind][subjectID] = append(m.events[kind][subjectID], at)
	return nil
}

func newCounter(t *testing.T, policies map[EventKind]Policy) (*WindowCounter, *memLog, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	log := newMemLog(clock)
	counter := NewWindowCounter(log, policies)
	counter.now = clock.Now
	return counter, log, clock
}

func TestCheckAndAdmit_AdmitsMaxMinusOneThenRejects(t *testing.T) {
	ctx := context.Background()
	counter, _, clock := newCounter(t, nil)

	for i := 0; i < 4; i++ {
		require.NoError(t, counter.CheckAndAdmit(ctx, 7, EventComment, 24*time.Hour, 5), "attempt %d", i+1)
		require.NoError(t, counter.Record(ctx, 7, EventComment))
		clock.Advance(time.Minute)
	}

	err := counter.CheckAndAdmit(ctx, 7, EventComment, 24*time.Hour, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestCheckAndAdmit_RejectsAtMaxCount(t *testing.T) {
	ctx := context.Background()
	counter, _, _ := newCounter(t, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, counter.Record(ctx, 1, EventFeedback))
	}

	err := counter.CheckAndAdmit(ctx, 1, EventFeedback, time.Hour, 3)
	var limitErr *LimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 3, limitErr.Count)
	assert.Equal(t, EventFeedback, limitErr.Kind)

	require.NoError(t, counter.CheckAndAdmit(ctx, 1, EventFeedback, time.Hour, 5))
}

func TestCheckAndAdmit_TrailingWindowRollsOver(t *testing.T) {
	ctx := context.Background()
	policies := map[EventKind]Policy{EventComment: {Window: 24 * time.Hour, MaxCount: 5}}
	counter, _, clock := newCounter(t, policies)

	// Four comments at 09:00, 10:00, 11:00, 12:00.
	for i := 0; i < 4; i++ {
		require.NoError(t, counter.Admit(ctx, 42, EventComment))
		require.NoError(t, counter.Record(ctx, 42, EventComment))
		clock.Advance(time.Hour)
	}
	require.ErrorIs(t, counter.Admit(ctx, 42, EventComment), ErrRateLimited)

	// Next calendar day but still inside the trailing window of all four.
	clock.Advance(14 * time.Hour) // 03:00 next day
	require.ErrorIs(t, counter.Admit(ctx, 42, EventComment), ErrRateLimited)

	// 09:00:01 next day: the first comment has left the window.
	clock.Advance(6*time.Hour + time.Second)
	require.NoError(t, counter.Admit(ctx, 42, EventComment))
}

func TestCheckAndAdmit_WindowStartIsInclusive(t *testing.T) {
	ctx := context.Background()
	counter, _, clock := newCounter(t, nil)

	require.NoError(t, counter.Record(ctx, 9, EventComment))
	clock.Advance(time.Hour)

	count, err := counter.CountSince(ctx, 9, EventComment, clock.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.ErrorIs(t, counter.CheckAndAdmit(ctx, 9, EventComment, time.Hour, 2), ErrRateLimited)
}

func TestCheckAndAdmit_SubjectsAndKindsAreIndependent(t *testing.T) {
	ctx := context.Background()
	counter, _, _ := newCounter(t, nil)

	require.NoError(t, counter.Record(ctx, 1, EventComment))
	require.NoError(t, counter.Record(ctx, 1, EventComment))

	require.ErrorIs(t, counter.CheckAndAdmit(ctx, 1, EventComment, time.Hour, 3), ErrRateLimited)
	require.NoError(t, counter.CheckAndAdmit(ctx, 2, EventComment, time.Hour, 3))
	require.NoError(t, counter.CheckAndAdmit(ctx, 1, EventFeedback, time.Hour, 3))
}

func TestAdmit_WithoutPolicyAlwaysAdmits(t *testing.T) {
	counter, _, _ := newCounter(t, nil)
	for i := 0; i < 10; i++ {
		require.NoError(t, counter.Admit(context.Background(), 1, EventFeedback))
		require.NoError(t, counter.Record(context.Background(), 1, EventFeedback))
	}
	_, ok := counter.Policy(EventFeedback)
	assert.False(t, ok)
}

func TestCheckAndAdmit_PropagatesLogErrors(t *testing.T) {
	counter, log, _ := newCounter(t, nil)
	log.err = errors.New("db down")

	err := counter.CheckAndAdmit(context.Background(), 1, EventComment, time.Hour, 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.ErrorIs(t, err, log.err)
}

type countOnly struct{ n int }

func (c countOnly) CountSince(context.Context, int64, EventKind, time.Time) (int, error) {
	return c.n, nil
}

func TestRecord_SkipsLogsWithoutRecorder(t *testing.T) {
	counter := NewWindowCounter(countOnly{n: 0}, nil)
	assert.NoError(t, counter.Record(context.Background(), 1, EventComment))
}
