package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// CreateJobInput carries everything needed to publish a listing.
type CreateJobInput struct {
	Title        string
	Company      string
	Location     string
	Type         string
	Description  string
	Requirements []string
	Salary       domain.Salary
	Deadline     string // RFC 3339, optional
	PostedBy     string
}

// ApplyInput is one user's application to a listing.
type ApplyInput struct {
	JobID       string
	UserID      string
	Resume      string
	CoverLetter string
}

// JobService defines job-board use cases.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, error)
	// Update and Delete require the actor to be the poster or an admin.
	Update(ctx context.Context, jobID, actorID string, actorRole domain.Role, update JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, jobID, actorID string, actorRole domain.Role) error

	// Apply records an application; one entry per user per job.
	Apply(ctx context.Context, input ApplyInput) error
	// SetApplicantStatus moves an application to a new review state. Only the
	// listing's poster or an admin may set it.
	SetApplicantStatus(ctx context.Context, jobID, applicantID, actorID string, actorRole domain.Role, status string) error

	Save(ctx context.Context, jobID, userID string) error
	Unsave(ctx context.Context, jobID, userID string) error
}
