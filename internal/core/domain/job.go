package domain

import "time"

// JobType is the employment arrangement of a listing.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
	JobRemote     JobType = "remote"
)

// ApplicationStatus is the review state of a single application entry.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// ParseApplicationStatus validates a status string against the closed set.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected:
		return ApplicationStatus(s), nil
	}
	return "", ErrInvalidApplicationStatus
}

// Salary is the advertised compensation range.
type Salary struct {
	Min      float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max      float64 `json:"max,omitempty" bson:"max,omitempty"`
	Currency string  `json:"currency" bson:"currency"`
}

// Applicant is one user's application to a job. At most one entry per user
// per job.
type Applicant struct {
	ID          string            `json:"id" bson:"_id"`
	UserID      string            `json:"user_id" bson:"user_id"`
	AppliedAt   time.Time         `json:"applied_at" bson:"applied_at"`
	Resume      string            `json:"resume,omitempty" bson:"resume,omitempty"`
	CoverLetter string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status" bson:"status"`
}

// Job is a listing on the job board.
type Job struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Title        string      `json:"title" bson:"title"`
	Company      string      `json:"company" bson:"company"`
	Location     string      `json:"location" bson:"location"`
	Type         JobType     `json:"type" bson:"type"`
	Description  string      `json:"description" bson:"description"`
	Requirements []string    `json:"requirements" bson:"requirements"`
	Salary       Salary      `json:"salary" bson:"salary"`
	PostedBy     string      `json:"posted_by" bson:"posted_by"`
	Applicants   []Applicant `json:"applicants" bson:"applicants"`
	IsActive     bool        `json:"is_active" bson:"is_active"`
	Deadline     time.Time   `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
}

// ApplicantByUser returns the application entry for userID, if present.
func (j *Job) ApplicantByUser(userID string) *Applicant {
	for i := range j.Applicants {
		if j.Applicants[i].UserID == userID {
			return &j.Applicants[i]
		}
	}
	return nil
}
