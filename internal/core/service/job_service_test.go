package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	saved  map[string][]string // userID → saved job ids
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job), saved: make(map[string][]string)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) (*domain.Job, error) {
	r.nextID++
	j.ID = fmt.Sprintf("job_%d", r.nextID)
	clone := *j
	r.jobs[j.ID] = &clone
	return j, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	clone.Applicants = append([]domain.Applicant(nil), j.Applicants...)
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if !j.IsActive {
			continue
		}
		if filter.Type != "" && string(j.Type) != filter.Type {
			continue
		}
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, update ports.JobUpdate) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if update.Title != nil {
		j.Title = *update.Title
	}
	if update.IsActive != nil {
		j.IsActive = *update.IsActive
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) AddApplicant(_ context.Context, jobID string, applicant domain.Applicant) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	applicant.ID = fmt.Sprintf("app_%d", len(j.Applicants)+1)
	j.Applicants = append(j.Applicants, applicant)
	return nil
}

func (r *stubJobRepo) SetApplicantStatus(_ context.Context, jobID, applicantID string, status domain.ApplicationStatus) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	for i := range j.Applicants {
		if j.Applicants[i].ID == applicantID {
			j.Applicants[i].Status = status
			return nil
		}
	}
	return domain.ErrApplicantNotFound
}

func (r *stubJobRepo) SaveForUser(_ context.Context, jobID, userID string) error {
	r.saved[userID] = addToSet(r.saved[userID], jobID)
	return nil
}

func (r *stubJobRepo) UnsaveForUser(_ context.Context, jobID, userID string) error {
	r.saved[userID] = pull(r.saved[userID], jobID)
	return nil
}

func postJob(t *testing.T, svc *JobService, poster string) *domain.Job {
	t.Helper()
	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:       "Backend Engineer",
		Company:     "LinkUp",
		Location:    "Remote",
		Type:        "full-time",
		Description: "Build things",
		PostedBy:    poster,
	})
	if err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	return job
}

func TestJobService_Create_RejectsMalformedDeadline(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:    "Backend Engineer",
		Company:  "LinkUp",
		Type:     "full-time",
		PostedBy: "poster1",
		Deadline: "next friday",
	})
	if !errors.Is(err, domain.ErrInvalidDeadline) {
		t.Fatalf("expected ErrInvalidDeadline, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("job persisted despite invalid deadline")
	}
}

func TestJobService_Create_ParsesDeadline(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())

	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:    "Backend Engineer",
		Company:  "LinkUp",
		Type:     "full-time",
		PostedBy: "poster1",
		Deadline: "2026-10-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if job.Deadline.IsZero() {
		t.Fatalf("deadline not set on the created job")
	}
}

func TestJobService_Apply_Success(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())
	job := postJob(t, svc, "poster")

	if err := svc.Apply(context.Background(), ports.ApplyInput{
		JobID: job.ID, UserID: "seeker", Resume: "cv.pdf",
	}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	stored, _ := svc.Get(context.Background(), job.ID)
	applicant := stored.ApplicantByUser("seeker")
	if applicant == nil {
		t.Fatal("applicant entry missing")
	}
	if applicant.Status != domain.ApplicationPending {
		t.Errorf("expected pending status, got %q", applicant.Status)
	}
	if applicant.AppliedAt.IsZero() {
		t.Error("applied_at must be set")
	}
}

func TestJobService_Apply_DuplicateRejected(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())
	job := postJob(t, svc, "poster")

	input := ports.ApplyInput{JobID: job.ID, UserID: "seeker"}
	if err := svc.Apply(context.Background(), input); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if err := svc.Apply(context.Background(), input); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	stored, _ := svc.Get(context.Background(), job.ID)
	if len(stored.Applicants) != 1 {
		t.Fatalf("expected exactly one applicant entry, got %d", len(stored.Applicants))
	}
}

func TestJobService_SetApplicantStatus_PosterOnly(t *testing.T) {
	repo := newStubJobRepo()
	notifier := &recordingNotifier{}
	svc := NewJobService(repo, notifier, zerolog.Nop())
	job := postJob(t, svc, "poster")
	_ = svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, UserID: "seeker"})

	stored, _ := svc.Get(context.Background(), job.ID)
	applicantID := stored.Applicants[0].ID

	err := svc.SetApplicantStatus(context.Background(), job.ID, applicantID, "stranger", domain.RoleJobPoster, "shortlisted")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	if err := svc.SetApplicantStatus(context.Background(), job.ID, applicantID, "poster", domain.RoleJobPoster, "shortlisted"); err != nil {
		t.Fatalf("poster update failed: %v", err)
	}

	stored, _ = svc.Get(context.Background(), job.ID)
	if stored.Applicants[0].Status != domain.ApplicationShortlisted {
		t.Errorf("expected shortlisted, got %q", stored.Applicants[0].Status)
	}

	// The applicant hears about the decision.
	last := notifier.events[len(notifier.events)-1]
	if last.Kind != domain.NotifApplicationStatus || last.Recipient != "seeker" {
		t.Errorf("expected application_status notification to seeker, got %+v", last)
	}
}

func TestJobService_SetApplicantStatus_AdminOverride(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())
	job := postJob(t, svc, "poster")
	_ = svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, UserID: "seeker"})

	stored, _ := svc.Get(context.Background(), job.ID)
	if err := svc.SetApplicantStatus(context.Background(), job.ID, stored.Applicants[0].ID, "someone-else", domain.RoleAdmin, "reviewed"); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestJobService_SetApplicantStatus_InvalidStatus(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())
	job := postJob(t, svc, "poster")
	_ = svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, UserID: "seeker"})

	stored, _ := svc.Get(context.Background(), job.ID)
	err := svc.SetApplicantStatus(context.Background(), job.ID, stored.Applicants[0].ID, "poster", domain.RoleJobPoster, "hired")
	if !errors.Is(err, domain.ErrInvalidApplicationStatus) {
		t.Fatalf("expected ErrInvalidApplicationStatus, got %v", err)
	}
}

func TestJobService_Update_OwnershipEnforced(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())
	job := postJob(t, svc, "poster")

	title := "Staff Engineer"
	if _, err := svc.Update(context.Background(), job.ID, "stranger", domain.RoleJobPoster, ports.JobUpdate{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), job.ID, "poster", domain.RoleJobPoster, ports.JobUpdate{Title: &title})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Errorf("title not updated: %q", updated.Title)
	}
}

func TestJobService_SaveAndUnsave(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &recordingNotifier{}, zerolog.Nop())
	job := postJob(t, svc, "poster")

	if err := svc.Save(context.Background(), job.ID, "seeker"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !contains(repo.saved["seeker"], job.ID) {
		t.Fatal("job not in saved set")
	}
	if err := svc.Unsave(context.Background(), job.ID, "seeker"); err != nil {
		t.Fatalf("unsave failed: %v", err)
	}
	if contains(repo.saved["seeker"], job.ID) {
		t.Fatal("job still in saved set after unsave")
	}
}

func TestJobService_Save_UnknownJob(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), &recordingNotifier{}, zerolog.Nop())

	if err := svc.Save(context.Background(), "missing", "seeker"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
