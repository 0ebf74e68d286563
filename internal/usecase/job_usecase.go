package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// validateJobFields checks the posting fields shared by create and update.
// Title and company are trimmed in place. Salary ordering (min <= max) is
// deliberately not checked; see DESIGN.md.
func validateJobFields(job *domain.JobPosting) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)

	if len(job.Title) < 3 {
		return apperror.BadRequest("Job title must be at least 3 characters")
	}
	if len(job.Company) < 2 {
		return apperror.BadRequest("Company must be at least 2 characters")
	}
	if job.MinSalary == "" || job.MaxSalary == "" {
		return apperror.BadRequest("Minimum and maximum salary are required")
	}

	switch job.Setup {
	case domain.JobSetupOnsite, domain.JobSetupRemote, domain.JobSetupHybrid:
	default:
		return apperror.BadRequest("Work setup must be one of: Onsite, Remote, Hybrid")
	}

	switch job.Type {
	case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract, domain.JobTypeInternship:
	default:
		return apperror.BadRequest("Job type must be one of: Full-Time, Part-Time, Contract, Internship")
	}

	return nil
}

// CreateJob stores a new posting. The author is always the caller, whatever
// author value arrived in the payload.
func (u *jobUsecase) CreateJob(ctx context.Context, authorID int64, job *domain.JobPosting) error {
	if err := validateJobFields(job); err != nil {
		return err
	}

	job.AuthorID = authorID
	job.CreatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ListJobs returns postings newest first.
func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobPosting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, pageSize, offset)
}

// SearchJobs matches the query as a case-insensitive substring of the title,
// newest first. An empty query matches all postings; unlike profile search
// it is not an error.
func (u *jobUsecase) SearchJobs(ctx context.Context, query string, page, pageSize int) ([]domain.JobPosting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.SearchByTitle(ctx, strings.TrimSpace(query), pageSize, offset)
}

// UpdateJob rewrites a posting's mutable fields. Only the current author may
// update, and a non-author caller cannot tell the posting exists at all on
// this path. The author is re-pinned to the caller on every update so
// ownership can never move.
func (u *jobUsecase) UpdateJob(ctx context.Context, callerID int64, job *domain.JobPosting) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job posting not found")
		}
		return apperror.Internal(err)
	}
	if existing.AuthorID != callerID {
		return apperror.NotFound("Job posting not found")
	}

	if err := validateJobFields(job); err != nil {
		return err
	}

	job.AuthorID = callerID
	job.CreatedAt = existing.CreatedAt

	return u.jobRepo.Update(ctx, job)
}

// DeleteJob removes a posting. The author may delete their own posting and
// an admin may delete any posting; everyone else gets the same not-found
// outcome as for a posting that never existed.
func (u *jobUsecase) DeleteJob(ctx context.Context, callerID int64, callerRole string, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job posting not found")
		}
		return apperror.Internal(err)
	}
	if job.AuthorID != callerID && callerRole != domain.RoleAdmin {
		return apperror.NotFound("Job posting not found")
	}

	return u.jobRepo.Delete(ctx, id)
}
