package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jobhub/job-board/internal/domain"
)

// JobRepository manages job persistence. Misses are reported as pgx.ErrNoRows.
type JobRepository interface {
	Add(ctx context.Context, job *domain.Job) (*domain.Job, error)
	GetAll(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

type jobRepository struct {
	db DB
}

// NewJobRepository builds the repository.
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, user_id, title, description, salary_from, salary_to, is_active, created_at, updated_at`

func (r *jobRepository) Add(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	const query = `
        INSERT INTO jobs (user_id, title, description, salary_from, salary_to, is_active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING ` + jobColumns
	return scanJob(r.db.QueryRow(ctx, query,
		job.UserID,
		job.Title,
		job.Description,
		job.SalaryFrom,
		job.SalaryTo,
		job.IsActive,
	))
}

func (r *jobRepository) GetAll(ctx context.Context) ([]domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	return result, rows.Err()
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

// Update overwrites the mutable fields only; owner and creation time are kept.
func (r *jobRepository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	const query = `
        UPDATE jobs SET title=$1, description=$2, salary_from=$3, salary_to=$4, is_active=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING ` + jobColumns
	return scanJob(r.db.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.SalaryFrom,
		job.SalaryTo,
		job.IsActive,
		job.ID,
	))
}

func (r *jobRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	if cmd.RowsAffected() == 0 {
		return 0, pgx.ErrNoRows
	}
	return id, nil
}

func scanJob(row interface{ Scan(dest ...any) error }) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Title,
		&job.Description,
		&job.SalaryFrom,
		&job.SalaryTo,
		&job.IsActive,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
