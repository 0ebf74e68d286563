package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, job_title, job_company, job_location, job_setup, job_type, min_salary, max_salary, job_description, job_requirements, job_benefits, created_at, author_id`

func scanJob(row interface{ Scan(...any) error }, job *domain.JobPosting) error {
	return row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Setup, &job.Type,
		&job.MinSalary, &job.MaxSalary, &job.Description, &job.Requirements, &job.Benefits,
		&job.CreatedAt, &job.AuthorID,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (job_title, job_company, job_location, job_setup, job_type, min_salary, max_salary, job_description, job_requirements, job_benefits, created_at, author_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Setup, job.Type,
		job.MinSalary, job.MaxSalary, job.Description, job.Requirements, job.Benefits,
		job.CreatedAt, job.AuthorID,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	var job domain.JobPosting
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// queryJobs runs a SELECT of jobColumns and collects the rows. The rows are
// fully drained and closed before returning so the caller can keep using the
// same transaction connection.
func queryJobs(ctx context.Context, tx pgx.Tx, sql string, args ...any) ([]domain.JobPosting, error) {
	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		var job domain.JobPosting
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Fetch returns a page of postings plus the total count. Both statements run
// in one repeatable-read transaction so the page and the total come from the
// same snapshot even under concurrent writes.
func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback(ctx)

	jobs, err := queryJobs(ctx, tx,
		`SELECT `+jobColumns+` FROM job_postings ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// SearchByTitle matches the query as a case-insensitive substring of the
// title. An empty query matches every posting. Page and count share a
// snapshot, same as Fetch.
func (r *jobRepo) SearchByTitle(ctx context.Context, query string, limit, offset int) ([]domain.JobPosting, int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback(ctx)

	jobs, err := queryJobs(ctx, tx,
		`SELECT `+jobColumns+` FROM job_postings
		 WHERE job_title ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE job_title ILIKE '%' || $1 || '%'`, query).Scan(&total); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Update rewrites every mutable field. created_at and author_id stay fixed;
// author pinning happens in the usecase before this is called.
func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings SET
		job_title = $2,
		job_company = $3,
		job_location = $4,
		job_setup = $5,
		job_type = $6,
		min_salary = $7,
		max_salary = $8,
		job_description = $9,
		job_requirements = $10,
		job_benefits = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Setup, job.Type,
		job.MinSalary, job.MaxSalary, job.Description, job.Requirements, job.Benefits,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_postings WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
