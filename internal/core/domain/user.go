package domain

import "time"

// Role is the closed set of account roles. Authorization decisions match on
// this type rather than on raw strings.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleJobPoster Role = "job_poster"
	RoleJobSeeker Role = "job_seeker"
)

// ParseRole converts a string into a Role, rejecting anything outside the
// closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleJobPoster, RoleJobSeeker:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// CanPostJobs reports whether the role may create and manage job listings.
func (r Role) CanPostJobs() bool {
	return r == RoleAdmin || r == RoleJobPoster
}

// Experience is a single work-history entry on a profile.
type Experience struct {
	Title       string    `json:"title" bson:"title"`
	Company     string    `json:"company" bson:"company"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	StartDate   time.Time `json:"start_date" bson:"start_date"`
	EndDate     time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Current     bool      `json:"current" bson:"current"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Education is a single education entry on a profile.
type Education struct {
	School      string    `json:"school" bson:"school"`
	Degree      string    `json:"degree" bson:"degree"`
	Field       string    `json:"field,omitempty" bson:"field,omitempty"`
	StartDate   time.Time `json:"start_date" bson:"start_date"`
	EndDate     time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
}

// AppliedJob records a job the user applied to, mirrored on the user document.
type AppliedJob struct {
	JobID     string            `json:"job_id" bson:"job_id"`
	AppliedAt time.Time         `json:"applied_at" bson:"applied_at"`
	Status    ApplicationStatus `json:"status" bson:"status"`
}

// User is the account and profile aggregate. The four relationship sets
// (connections, pending, sent, saved jobs) are maintained exclusively through
// the connection store and job service; nothing else writes them.
type User struct {
	ID                 string       `json:"id" bson:"_id,omitempty"`
	Name               string       `json:"name" bson:"name"`
	Email              string       `json:"email" bson:"email"`
	PasswordHash       string       `json:"-" bson:"password_hash"`
	Role               Role         `json:"role" bson:"role"`
	ProfilePicture     string       `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	Headline           string       `json:"headline,omitempty" bson:"headline,omitempty"`
	Summary            string       `json:"summary,omitempty" bson:"summary,omitempty"`
	Location           string       `json:"location,omitempty" bson:"location,omitempty"`
	Company            string       `json:"company,omitempty" bson:"company,omitempty"`
	Position           string       `json:"position,omitempty" bson:"position,omitempty"`
	Skills             []string     `json:"skills" bson:"skills"`
	Experience         []Experience `json:"experience" bson:"experience"`
	Education          []Education  `json:"education" bson:"education"`
	Connections        []string     `json:"connections" bson:"connections"`
	PendingConnections []string     `json:"pending_connections" bson:"pending_connections"`
	SentConnections    []string     `json:"sent_connections" bson:"sent_connections"`
	SavedJobs          []string     `json:"saved_jobs" bson:"saved_jobs"`
	AppliedJobs        []AppliedJob `json:"applied_jobs" bson:"applied_jobs"`
	CreatedAt          time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at" bson:"updated_at"`
}

// UserSummary is the lightweight view used in connection lists, suggestions,
// and embedded references.
type UserSummary struct {
	ID             string `json:"id" bson:"_id"`
	Name           string `json:"name" bson:"name"`
	Headline       string `json:"headline,omitempty" bson:"headline,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	Company        string `json:"company,omitempty" bson:"company,omitempty"`
	Position       string `json:"position,omitempty" bson:"position,omitempty"`
}

// ToSummary projects the user down to its list representation.
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Headline:       u.Headline,
		ProfilePicture: u.ProfilePicture,
		Company:        u.Company,
		Position:       u.Position,
	}
}

// IsConnectedTo reports whether peerID is in the confirmed connection set.
func (u *User) IsConnectedTo(peerID string) bool {
	for _, id := range u.Connections {
		if id == peerID {
			return true
		}
	}
	return false
}
