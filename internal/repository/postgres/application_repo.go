package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The UNIQUE (user_id, job_id) constraint
// is the authoritative duplicate check: two concurrent submissions both pass
// the usecase existence check, but only one insert wins.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, application_status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	app.Date = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusUnderReview
	}

	err := r.db.QueryRow(ctx, query,
		app.UserID,
		app.JobID,
		app.Status,
		app.Date,
	).Scan(&app.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.BadRequest("You have already applied to this job")
		}
		return err
	}
	return nil
}

// GetByID retrieves an application by ID with joined job data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.user_id, a.job_id, a.application_status, a.date,
			j.job_title, j.job_company
		FROM applications a
		LEFT JOIN job_postings j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.UserID, &app.JobID, &app.Status, &app.Date,
		&app.JobTitle, &app.JobCompany,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByApplicant retrieves a user's own applications, optionally filtered by
// an exact status match.
func (r *applicationRepo) GetByApplicant(ctx context.Context, userID int64, status string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.user_id, a.job_id, a.application_status, a.date,
			j.job_title, j.job_company
		FROM applications a
		LEFT JOIN job_postings j ON a.job_id = j.id
		WHERE a.user_id = $1
		  AND ($2 = '' OR a.application_status = $2)
		ORDER BY a.date DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.JobID, &app.Status, &app.Date,
			&app.JobTitle, &app.JobCompany,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByJobAuthor retrieves all applications submitted against jobs authored
// by the given user (the employer view).
func (r *applicationRepo) GetByJobAuthor(ctx context.Context, authorID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.user_id, a.job_id, a.application_status, a.date,
			j.job_title, j.job_company,
			u.email
		FROM applications a
		JOIN job_postings j ON a.job_id = j.id
		LEFT JOIN users u ON a.user_id = u.id
		WHERE j.author_id = $1
		ORDER BY a.date DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.JobID, &app.Status, &app.Date,
			&app.JobTitle, &app.JobCompany, &app.ApplicantEmail,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// CheckExists checks if an application already exists for the user/job combination
func (r *applicationRepo) CheckExists(ctx context.Context, userID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, jobID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of an application
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET application_status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
