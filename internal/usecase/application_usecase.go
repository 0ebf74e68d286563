package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits an application to a job. The applicant and the date are
// server-assigned; a job author cannot apply to their own posting and an
// applicant can hold at most one application per job. The existence check
// gives a friendly error in the common case, while the storage uniqueness
// constraint closes the concurrent-duplicate race.
func (uc *applicationUsecase) Apply(ctx context.Context, applicantID, jobID int64) (*domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, apperror.Internal(err)
	}

	if job.AuthorID == applicantID {
		return nil, apperror.BadRequest("You cannot apply to your own job posting")
	}

	exists, err := uc.applicationRepo.CheckExists(ctx, applicantID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	app := &domain.Application{
		UserID: applicantID,
		JobID:  jobID,
		Status: domain.ApplicationStatusUnderReview,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	app.JobTitle = &job.Title
	app.JobCompany = &job.Company
	return app, nil
}

// ListMyApplications returns the caller's own applications, optionally
// filtered by exact status.
func (uc *applicationUsecase) ListMyApplications(ctx context.Context, applicantID int64, statusFilter string) ([]domain.Application, error) {
	if statusFilter != "" && !domain.ValidApplicationStatus(statusFilter) {
		return nil, apperror.BadRequest("Invalid status. Must be: Under Review, Interview, Accepted, or Rejected")
	}
	return uc.applicationRepo.GetByApplicant(ctx, applicantID, statusFilter)
}

// ListApplicationsForMyJobs returns applications against postings the caller
// authored. Scoping happens in the query, so the caller never sees
// applications on anyone else's jobs.
func (uc *applicationUsecase) ListApplicationsForMyJobs(ctx context.Context, authorID int64) ([]domain.Application, error) {
	return uc.applicationRepo.GetByJobAuthor(ctx, authorID)
}

// UpdateStatus transitions an application to any of the defined statuses.
// Only the author of the application's job may do this. There is no
// ordering constraint between statuses.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, callerID, applicationID int64, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid status. Must be: Under Review, Interview, Accepted, or Rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job posting not found")
		}
		return apperror.Internal(err)
	}
	if job.AuthorID != callerID {
		return apperror.Forbidden("Only the job author can update application status")
	}

	return uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
}
