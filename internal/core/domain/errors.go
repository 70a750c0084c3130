package domain

import "errors"

// Sentinel errors. The API layer maps these to HTTP status codes in one
// place (internal/api/error_handler.go); services and repositories only ever
// return or wrap them.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")

	ErrSelfConnection     = errors.New("cannot connect with yourself")
	ErrRequestExists      = errors.New("connection request already exists")
	ErrAlreadyConnected   = errors.New("already connected")
	ErrConnectionNotFound = errors.New("connection request not found")
	ErrRequestNotPending  = errors.New("connection request already resolved")

	ErrPostNotFound = errors.New("post not found")

	ErrJobNotFound              = errors.New("job not found")
	ErrInvalidDeadline          = errors.New("deadline must be an RFC 3339 timestamp")
	ErrAlreadyApplied           = errors.New("already applied for this job")
	ErrApplicantNotFound        = errors.New("applicant not found")
	ErrInvalidApplicationStatus = errors.New("invalid application status")

	ErrNotificationNotFound = errors.New("notification not found")
)
