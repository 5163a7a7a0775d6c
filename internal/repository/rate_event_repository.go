package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Favour-325/campusly-myjfn2/internal/ratelimit"
)

type rateEventRepository struct {
	pool *pgxpool.Pool
}

// NewRateEventRepository counts rate-limited actions straight from the rows they create.
func NewRateEventRepository(pool *pgxpool.Pool) ratelimit.EventLog {
	return &rateEventRepository{pool: pool}
}

// countQuery returns the count statement for kind. The window start is inclusive.
func countQuery(kind ratelimit.EventKind) (string, error) {
	var table string
	switch kind {
	case ratelimit.EventComment:
		table = "comments"
	case ratelimit.EventFeedback:
		table = "feedback"
	default:
		return "", fmt.Errorf("unknown event kind %q", kind)
	}
	return `SELECT COUNT(*) FROM ` + table + ` WHERE student_id=$1 AND created_at >= $2 AND created_at <= NOW()`, nil
}

func (r *rateEventRepository) CountSince(ctx context.Context, subjectID int64, kind ratelimit.EventKind, windowStart time.Time) (int, error) {
	query, err := countQuery(kind)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, subjectID, windowStart).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
