package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// UserService defines directory and profile use cases.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// List returns every user. Admin only; enforced by the caller's RBAC.
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateProfile applies an allow-listed update. Only the profile owner or
	// an admin may update.
	UpdateProfile(ctx context.Context, id, actorID string, actorRole domain.Role, update ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
