package domain

import (
	"context"
	"time"
)

// Application status constants. The workflow is a flat set: the job author
// may move an application between any two defined statuses, there is no
// enforced forward-only sequence.
const (
	ApplicationStatusUnderReview = "Under Review"
	ApplicationStatusInterview   = "Interview"
	ApplicationStatusAccepted    = "Accepted"
	ApplicationStatusRejected    = "Rejected"
)

// ValidApplicationStatus reports whether s is one of the defined statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusUnderReview, ApplicationStatusInterview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links an applicant to a job posting. At most one application
// exists per (applicant, job) pair, enforced by a storage-level uniqueness
// constraint. The applicant and date are server-assigned and immutable;
// status is the only mutable field and only the job's author may change it.
type Application struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"user"`
	JobID  int64     `json:"job"`
	Status string    `json:"application_status"`
	Date   time.Time `json:"date"`

	// Joined data for list responses
	JobTitle       *string `json:"job_title,omitempty"`
	JobCompany     *string `json:"job_company,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByApplicant(ctx context.Context, userID int64, status string) ([]Application, error)
	GetByJobAuthor(ctx context.Context, authorID int64) ([]Application, error)
	CheckExists(ctx context.Context, userID, jobID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationUsecase defines business logic for the application ledger
type ApplicationUsecase interface {
	// Applicant operations
	Apply(ctx context.Context, applicantID, jobID int64) (*Application, error)
	ListMyApplications(ctx context.Context, applicantID int64, statusFilter string) ([]Application, error)

	// Employer operations
	ListApplicationsForMyJobs(ctx context.Context, authorID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, callerID, applicationID int64, status string) error
}
