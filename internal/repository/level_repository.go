package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// LevelRepository manages levels of study. Names are unique.
type LevelRepository interface {
	Create(ctx context.Context, level *domain.Level) error
	Update(ctx context.Context, level *domain.Level) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Level, error)
}

type levelRepository struct {
	pool *pgxpool.Pool
}

// NewLevelRepository builds the repository.
func NewLevelRepository(pool *pgxpool.Pool) LevelRepository {
	return &levelRepository{pool: pool}
}

func (r *levelRepository) Create(ctx context.Context, level *domain.Level) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO levels (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		level.Name,
	).Scan(&level.ID, &level.CreatedAt, &level.UpdatedAt)
	return mapWriteError(err)
}

func (r *levelRepository) Update(ctx context.Context, level *domain.Level) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE levels SET name=$1, updated_at=NOW() WHERE id=$2 RETURNING created_at, updated_at`,
		level.Name,
		level.ID,
	).Scan(&level.CreatedAt, &level.UpdatedAt)
	return mapWriteError(err)
}

func (r *levelRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM levels WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *levelRepository) List(ctx context.Context) ([]domain.Level, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM levels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Level
	for rows.Next() {
		var level domain.Level
		if err := rows.Scan(&level.ID, &level.Name, &level.CreatedAt, &level.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, level)
	}
	return result, rows.Err()
}
