package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// MessageRepository manages admin-to-student messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	Delete(ctx context.Context, id int64) error
	// List returns messages newest first, restricted to one student when studentID is set.
	List(ctx context.Context, studentID *int64, limit, offset int) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository builds the repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	const query = `
        INSERT INTO messages (admin_id, student_id, subject, content)
        VALUES ($1,$2,$3,$4)
        RETURNING id, is_read, created_at`
	err := r.pool.QueryRow(ctx, query,
		msg.AdminID,
		msg.StudentID,
		msg.Subject,
		msg.Content,
	).Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
	return mapWriteError(err)
}

func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) List(ctx context.Context, studentID *int64, limit, offset int) ([]domain.Message, error) {
	limit, offset = normalizePage(limit, offset)
	const query = `
        SELECT id, admin_id, student_id, subject, content, is_read, created_at
        FROM messages
        WHERE ($1::BIGINT IS NULL OR student_id = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, studentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.AdminID, &m.StudentID, &m.Subject, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
