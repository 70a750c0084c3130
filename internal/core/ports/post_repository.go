package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// PostRepository defines persistence operations for feed posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns the newest posts first, at most limit.
	List(ctx context.Context, limit int) ([]*domain.Post, error)
	// ToggleLike adds userID to the like set when absent and removes it when
	// present, returning the resulting liked state.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID string, comment domain.Comment) error
	Delete(ctx context.Context, id string) error
}
