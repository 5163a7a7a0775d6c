package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// ReactionRepository manages post reactions. A student holds at most one
// reaction of each kind per post.
type ReactionRepository interface {
	Create(ctx context.Context, reaction *domain.Reaction) error
	List(ctx context.Context, postID *int64, limit, offset int) ([]domain.Reaction, error)
	CountByPost(ctx context.Context, postID int64) (domain.ReactionCount, error)
}

type reactionRepository struct {
	pool *pgxpool.Pool
}

// NewReactionRepository builds the repository.
func NewReactionRepository(pool *pgxpool.Pool) ReactionRepository {
	return &reactionRepository{pool: pool}
}

func (r *reactionRepository) Create(ctx context.Context, reaction *domain.Reaction) error {
	const query = `
        INSERT INTO reactions (post_id, student_id, kind)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		reaction.PostID,
		reaction.StudentID,
		string(reaction.Kind),
	).Scan(&reaction.ID, &reaction.CreatedAt)
	return mapWriteError(err)
}

func (r *reactionRepository) List(ctx context.Context, postID *int64, limit, offset int) ([]domain.Reaction, error) {
	limit, offset = normalizePage(limit, offset)
	const query = `
        SELECT id, post_id, student_id, kind, created_at
        FROM reactions
        WHERE ($1::BIGINT IS NULL OR post_id = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Reaction
	for rows.Next() {
		var (
			reaction domain.Reaction
			kind     string
		)
		if err := rows.Scan(&reaction.ID, &reaction.PostID, &reaction.StudentID, &kind, &reaction.CreatedAt); err != nil {
			return nil, err
		}
		reaction.Kind = domain.ReactionKind(kind)
		result = append(result, reaction)
	}
	return result, rows.Err()
}

func (r *reactionRepository) CountByPost(ctx context.Context, postID int64) (domain.ReactionCount, error) {
	const query = `
        SELECT
            COUNT(*) FILTER (WHERE kind = 'like'),
            COUNT(*) FILTER (WHERE kind = 'celebrate'),
            COUNT(*) FILTER (WHERE kind = 'sad')
        FROM reactions WHERE post_id=$1`
	count := domain.ReactionCount{PostID: postID}
	err := r.pool.QueryRow(ctx, query, postID).Scan(&count.Like, &count.Celebrate, &count.Sad)
	return count, err
}
