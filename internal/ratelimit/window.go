// Package ratelimit caps how often a subject may perform an action within a
// trailing time window.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimited is returned when a subject has used up its window.
var ErrRateLimited = errors.New("rate limit exceeded")

// EventKind identifies a rate-limited action.
type EventKind string

const (
	EventComment  EventKind = "comment"
	EventFeedback EventKind = "feedback"
)

// EventLog counts a subject's events of one kind at or after windowStart.
type EventLog interface {
	CountSince(ctx context.Context, subjectID int64, kind EventKind, windowStart time.Time) (int, error)
}

// EventRecorder is implemented by event logs that are not fed by the persisted
// rows themselves and need each admitted action recorded explicitly.
type EventRecorder interface {
	Record(ctx context.Context, subjectID int64, kind EventKind, at time.Time) error
}

// Policy caps an action at MaxCount-1 admissions per trailing Window.
type Policy struct {
	Window   time.Duration
	MaxCount int
}

// LimitError is an ErrRateLimited with the policy that rejected the action.
type LimitError struct {
	Kind   EventKind
	Policy Policy
	Count  int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s limit reached (%d per %s)", e.Kind, e.Policy.MaxCount-1, e.Policy.Window)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// WindowCounter admits or rejects actions against an EventLog.
type WindowCounter struct {
	events   EventLog
	policies map[EventKind]Policy
	now      func() time.Time
}

// NewWindowCounter builds a counter over events with per-kind policies.
func NewWindowCounter(events EventLog, policies map[EventKind]Policy) *WindowCounter {
	copied := make(map[EventKind]Policy, len(policies))
	for kind, policy := range policies {
		copied[kind] = policy
	}
	return &WindowCounter{events: events, policies: copied, now: time.Now}
}

// CountSince returns the subject's events of kind since windowStart.
func (w *WindowCounter) CountSince(ctx context.Context, subjectID int64, kind EventKind, windowStart time.Time) (int, error) {
	return w.events.CountSince(ctx, subjectID, kind, windowStart)
}

// CheckAndAdmit rejects with ErrRateLimited when the attempt would be the
// subject's maxCount-th event inside the window ending now, so at most
// maxCount-1 actions are admitted per window.
func (w *WindowCounter) CheckAndAdmit(ctx context.Context, subjectID int64, kind EventKind, window time.Duration, maxCount int) error {
	windowStart := w.now().Add(-window)
	count, err := w.events.CountSince(ctx, subjectID, kind, windowStart)
	if err != nil {
		return fmt.Errorf("count %s events: %w", kind, err)
	}
	if count+1 >= maxCount {
		return &LimitError{Kind: kind, Policy: Policy{Window: window, MaxCount: maxCount}, Count: count}
	}
	return nil
}

// Admit applies the configured policy for kind. Kinds without a policy are always admitted.
func (w *WindowCounter) Admit(ctx context.Context, subjectID int64, kind EventKind) error {
	policy, ok := w.policies[kind]
	if !ok {
		return nil
	}
	return w.CheckAndAdmit(ctx, subjectID, kind, policy.Window, policy.MaxCount)
}

// Record notes an admitted action once it has been persisted.
func (w *WindowCounter) Record(ctx context.Context, subjectID int64, kind EventKind) error {
	recorder, ok := w.events.(EventRecorder)
	if !ok {
		return nil
	}
	return recorder.Record(ctx, subjectID, kind, w.now())
}

// Policy returns the configured policy for kind.
func (w *WindowCounter) Policy(kind EventKind) (Policy, bool) {
	policy, ok := w.policies[kind]
	return policy, ok
}
