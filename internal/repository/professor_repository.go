package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// ProfessorRepository handles persistence for professors.
type ProfessorRepository interface {
	Create(ctx context.Context, professor *domain.Professor) error
	Update(ctx context.Context, professor *domain.Professor) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Professor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Professor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Professor, error)
}

type professorRepository struct {
	pool *pgxpool.Pool
}

// NewProfessorRepository instantiates the repository.
func NewProfessorRepository(pool *pgxpool.Pool) ProfessorRepository {
	return &professorRepository{pool: pool}
}

const professorColumns = `id, name, email, phone, password_hash, university_id, created_at, updated_at`

func scanProfessor(row pgx.Row) (*domain.Professor, error) {
	var p domain.Professor
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.PasswordHash,
		&p.UniversityID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professorRepository) Create(ctx context.Context, professor *domain.Professor) error {
	const query = `
        INSERT INTO professors (name, email, phone, password_hash, university_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		professor.Name,
		professor.Email,
		professor.Phone,
		professor.PasswordHash,
		professor.UniversityID,
	).Scan(&professor.ID, &professor.CreatedAt, &professor.UpdatedAt)
	return mapWriteError(err)
}

func (r *professorRepository) Update(ctx context.Context, professor *domain.Professor) error {
	const query = `
        UPDATE professors
        SET name=$1, email=$2, phone=$3, password_hash=$4, university_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		professor.Name,
		professor.Email,
		professor.Phone,
		professor.PasswordHash,
		professor.UniversityID,
		professor.ID,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *professorRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM professors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *professorRepository) GetByID(ctx context.Context, id int64) (*domain.Professor, error) {
	return scanProfessor(r.pool.QueryRow(ctx, `SELECT `+professorColumns+` FROM professors WHERE id=$1`, id))
}

func (r *professorRepository) GetByEmail(ctx context.Context, email string) (*domain.Professor, error) {
	return scanProfessor(r.pool.QueryRow(ctx, `SELECT `+professorColumns+` FROM professors WHERE email=$1`, email))
}

func (r *professorRepository) List(ctx context.Context, limit, offset int) ([]domain.Professor, error) {
	limit, offset = normalizePage(limit, offset)
	rows, err := r.pool.Query(ctx, `SELECT `+professorColumns+` FROM professors ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Professor
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}
