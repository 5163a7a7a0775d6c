package service

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Favour-325/campusly-myjfn2/internal/ratelimit"
	apperrors "github.com/Favour-325/campusly-myjfn2/pkg/util/errorutil"
)

// ActionLimiter gates rate-limited student actions. *ratelimit.WindowCounter satisfies it.
type ActionLimiter interface {
	Admit(ctx context.Context, subjectID int64, kind ratelimit.EventKind) error
	Record(ctx context.Context, subjectID int64, kind ratelimit.EventKind) error
}

type noLimit struct{}

func (noLimit) Admit(context.Context, int64, ratelimit.EventKind) error  { return nil }
func (noLimit) Record(context.Context, int64, ratelimit.EventKind) error { return nil }

func limiterOrNone(l ActionLimiter) ActionLimiter {
	if l == nil {
		return noLimit{}
	}
	return l
}

func admit(ctx context.Context, limiter ActionLimiter, subjectID int64, kind ratelimit.EventKind) error {
	err := limiter.Admit(ctx, subjectID, kind)
	if err == nil {
		return nil
	}
	var limitErr *ratelimit.LimitError
	if errors.As(err, &limitErr) {
		de := apperrors.NewDomainError("RATE_LIMITED", limitErr.Error(), http.StatusTooManyRequests, map[string]any{
			"action":         string(limitErr.Kind),
			"window":         limitErr.Policy.Window.String(),
			"max_per_window": limitErr.Policy.MaxCount - 1,
		})
		de.Err = err
		return de
	}
	if errors.Is(err, ratelimit.ErrRateLimited) {
		return apperrors.NewTooManyRequests(err.Error(), nil)
	}
	return apperrors.NewInternalError(err)
}

// record is best effort; the action is already persisted.
func record(ctx context.Context, limiter ActionLimiter, logger *zap.Logger, subjectID int64, kind ratelimit.EventKind) {
	if err := limiter.Record(ctx, subjectID, kind); err != nil {
		logger.Warn("rate event not recorded",
			zap.String("kind", string(kind)),
			zap.Int64("subject_id", subjectID),
			zap.Error(err))
	}
}
