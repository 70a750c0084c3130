package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// JobService implements the job board use cases.
type JobService struct {
	jobs     ports.JobRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, notifier ports.Notifier, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, notifier: notifier, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		Type:         domain.JobType(input.Type),
		Description:  input.Description,
		Requirements: input.Requirements,
		Salary:       input.Salary,
		PostedBy:     input.PostedBy,
		Applicants:   []domain.Applicant{},
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = "USD"
	}
	if input.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, input.Deadline)
		if err != nil {
			return nil, domain.ErrInvalidDeadline
		}
		job.Deadline = deadline.UTC()
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("poster", input.PostedBy).Msg("job created")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

func (s *JobService) Update(ctx context.Context, jobID, actorID string, actorRole domain.Role, update ports.JobUpdate) (*domain.Job, error) {
	if err := s.authorizePoster(ctx, jobID, actorID, actorRole); err != nil {
		return nil, err
	}
	return s.jobs.Update(ctx, jobID, update)
}

func (s *JobService) Delete(ctx context.Context, jobID, actorID string, actorRole domain.Role) error {
	if err := s.authorizePoster(ctx, jobID, actorID, actorRole); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", jobID).Str("actor", actorID).Msg("job deleted")
	return nil
}

func (s *JobService) Apply(ctx context.Context, input ports.ApplyInput) error {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return err
	}
	if job.ApplicantByUser(input.UserID) != nil {
		return domain.ErrAlreadyApplied
	}

	// The repository assigns the entry id on insert.
	applicant := domain.Applicant{
		UserID:      input.UserID,
		AppliedAt:   time.Now().UTC(),
		Resume:      input.Resume,
		CoverLetter: input.CoverLetter,
		Status:      domain.ApplicationPending,
	}

	if err := s.jobs.AddApplicant(ctx, input.JobID, applicant); err != nil {
		return err
	}

	s.logger.Info().Str("job_id", input.JobID).Str("user", input.UserID).Msg("application submitted")
	return nil
}

func (s *JobService) SetApplicantStatus(ctx context.Context, jobID, applicantID, actorID string, actorRole domain.Role, status string) error {
	parsed, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return err
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.PostedBy != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	var applicant *domain.Applicant
	for i := range job.Applicants {
		if job.Applicants[i].ID == applicantID {
			applicant = &job.Applicants[i]
			break
		}
	}
	if applicant == nil {
		return domain.ErrApplicantNotFound
	}

	if err := s.jobs.SetApplicantStatus(ctx, jobID, applicantID, parsed); err != nil {
		return err
	}

	s.logger.Info().
		Str("job_id", jobID).
		Str("applicant", applicant.UserID).
		Str("status", string(parsed)).
		Msg("application status updated")

	s.notifier.Notify(ports.NotificationInput{
		Recipient: applicant.UserID,
		Actor:     actorID,
		Kind:      domain.NotifApplicationStatus,
		Ref:       jobID,
	})

	return nil
}

func (s *JobService) Save(ctx context.Context, jobID, userID string) error {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return err
	}
	return s.jobs.SaveForUser(ctx, jobID, userID)
}

func (s *JobService) Unsave(ctx context.Context, jobID, userID string) error {
	return s.jobs.UnsaveForUser(ctx, jobID, userID)
}

func (s *JobService) authorizePoster(ctx context.Context, jobID, actorID string, actorRole domain.Role) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.PostedBy != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
