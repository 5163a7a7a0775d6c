package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// UniversityRepository manages university persistence.
type UniversityRepository interface {
	Create(ctx context.Context, uni *domain.University) error
	Update(ctx context.Context, uni *domain.University) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.University, error)
	List(ctx context.Context) ([]domain.University, error)
}

type universityRepository struct {
	pool *pgxpool.Pool
}

// NewUniversityRepository builds the repository.
func NewUniversityRepository(pool *pgxpool.Pool) UniversityRepository {
	return &universityRepository{pool: pool}
}

func (r *universityRepository) Create(ctx context.Context, uni *domain.University) error {
	const query = `
        INSERT INTO universities (name, location, email, phone)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		uni.Name,
		uni.Location,
		uni.Email,
		uni.Phone,
	).Scan(&uni.ID, &uni.CreatedAt, &uni.UpdatedAt)
}

func (r *universityRepository) Update(ctx context.Context, uni *domain.University) error {
	const query = `
        UPDATE universities SET name=$1, location=$2, email=$3, phone=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		uni.Name,
		uni.Location,
		uni.Email,
		uni.Phone,
		uni.ID,
	).Scan(&uni.CreatedAt, &uni.UpdatedAt)
}

func (r *universityRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM universities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *universityRepository) GetByID(ctx context.Context, id int64) (*domain.University, error) {
	const query = `
        SELECT id, name, location, email, phone, created_at, updated_at
        FROM universities WHERE id=$1`
	var uni domain.University
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&uni.ID,
		&uni.Name,
		&uni.Location,
		&uni.Email,
		&uni.Phone,
		&uni.CreatedAt,
		&uni.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &uni, nil
}

func (r *universityRepository) List(ctx context.Context) ([]domain.University, error) {
	const query = `
        SELECT id, name, location, email, phone, created_at, updated_at
        FROM universities ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.University
	for rows.Next() {
		var uni domain.University
		if err := rows.Scan(&uni.ID, &uni.Name, &uni.Location, &uni.Email, &uni.Phone, &uni.CreatedAt, &uni.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, uni)
	}
	return result, rows.Err()
}
