package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.Querier
}

func NewPostgresJobRepository(db database.Querier) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.company_id, j.title, COALESCE(c.name, ''), j.location, j.description, j.remote,
	j.job_types, j.benefits, j.salary_min::float8, j.salary_max::float8, j.salary_period, j.salary_currency,
	j.posted_at, j.created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1 AND j.is_active = true`,
		jobID,
	)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// ListJobs returns active postings, newest first. limit is clamped to
// 1..200 and a negative offset is treated as zero.
func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE j.is_active = true
		 ORDER BY j.created_at DESC, j.id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID,
		&j.CompanyID,
		&j.Title,
		&j.Company,
		&j.Location,
		&j.Description,
		&j.Remote,
		&j.JobTypes,
		&j.Benefits,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.SalaryPeriod,
		&j.SalaryCurrency,
		&j.PostedAt,
		&j.CreatedAt,
	)
	return j, err
}
