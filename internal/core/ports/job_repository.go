package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// ListJobsFilter carries the query parameters of the job board listing.
// Zero values mean "no filter".
type ListJobsFilter struct {
	Type     string // exact match on job type
	Location string // case-insensitive partial match
	Search   string // case-insensitive partial match on title, company or description
}

// JobUpdate is the set of mutable listing fields. Nil means unchanged.
type JobUpdate struct {
	Title        *string
	Company      *string
	Location     *string
	Type         *string
	Description  *string
	Requirements *[]string
	Salary       *domain.Salary
	IsActive     *bool
}

// JobRepository defines persistence operations for job listings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns active listings matching filter, newest first.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, error)
	Update(ctx context.Context, id string, update JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, id string) error

	// AddApplicant appends an application entry, assigning its id, and
	// mirrors the application onto the user's applied_jobs set.
	AddApplicant(ctx context.Context, jobID string, applicant domain.Applicant) error
	SetApplicantStatus(ctx context.Context, jobID, applicantID string, status domain.ApplicationStatus) error

	// SaveForUser / UnsaveForUser toggle jobID in the user's saved_jobs set.
	SaveForUser(ctx context.Context, jobID, userID string) error
	UnsaveForUser(ctx context.Context, jobID, userID string) error
}
