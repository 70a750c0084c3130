package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// PostService defines feed use cases.
type PostService interface {
	Create(ctx context.Context, authorID, content, image string) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Feed(ctx context.Context) ([]*domain.Post, error)
	// ToggleLike flips userID's membership in the like set and returns the
	// refreshed post.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	Comment(ctx context.Context, postID, userID, text string) (*domain.Post, error)
	// Delete removes a post. Only the author or an admin may delete.
	Delete(ctx context.Context, postID, actorID string, actorRole domain.Role) error
}
