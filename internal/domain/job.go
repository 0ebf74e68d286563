package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Work setup choices
const (
	JobSetupOnsite = "Onsite"
	JobSetupRemote = "Remote"
	JobSetupHybrid = "Hybrid"
)

// Employment type choices
const (
	JobTypeFullTime   = "Full-Time"
	JobTypePartTime   = "Part-Time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// JobPosting is an employer-authored listing. AuthorID is pinned to the
// creating caller on create and on every update, so ownership can never be
// transferred through the API. CreatedAt is the newest-first ordering key
// and is never rewritten.
//
// MinSalary and MaxSalary are kept as strings: the API accepts both numeric
// and numeric-string input and coerces to string form. No min <= max ordering
// is enforced (matches the system of record; see DESIGN.md).
type JobPosting struct {
	ID           int64     `json:"id"`
	Title        string    `json:"job_title"`
	Company      string    `json:"job_company"`
	Location     string    `json:"job_location"`
	Setup        string    `json:"job_setup"`
	Type         string    `json:"job_type"`
	MinSalary    string    `json:"min_salary"`
	MaxSalary    string    `json:"max_salary"`
	Description  string    `json:"job_description"`
	Requirements string    `json:"job_requirements"`
	Benefits     string    `json:"job_benefits"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorID     int64     `json:"author"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobPosting, int64, error)
	SearchByTitle(ctx context.Context, query string, limit, offset int) ([]JobPosting, int64, error)
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, authorID int64, job *JobPosting) error
	GetJobDetails(ctx context.Context, id int64) (*JobPosting, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobPosting, int64, error)
	SearchJobs(ctx context.Context, query string, page, pageSize int) ([]JobPosting, int64, error)
	UpdateJob(ctx context.Context, callerID int64, job *JobPosting) error
	DeleteJob(ctx context.Context, callerID int64, callerRole string, id int64) error
}
