package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// ProfileUpdate is the allow-listed set of mutable profile fields. Nil
// pointers mean "leave unchanged"; the repository only touches non-nil
// fields.
type ProfileUpdate struct {
	Name           *string
	Headline       *string
	Summary        *string
	Location       *string
	Company        *string
	Position       *string
	ProfilePicture *string
	Skills         *[]string
	Experience     *[]domain.Experience
	Education      *[]domain.Education
}

// UserRepository defines persistence operations for user documents.
// Relationship-set fields are written only by the ConnectionStore; this
// repository never mutates them aside from whole-document reads.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// Summaries resolves the given ids into lightweight views, preserving no
	// particular order. Unknown ids are silently skipped.
	Summaries(ctx context.Context, ids []string) ([]domain.UserSummary, error)
	// SummariesExcluding returns up to limit users whose id is not in
	// exclude, in storage order.
	SummariesExcluding(ctx context.Context, exclude []string, limit int) ([]domain.UserSummary, error)
}
