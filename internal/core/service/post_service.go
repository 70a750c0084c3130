package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

const feedLimit = 20

// PostService implements the social feed use cases.
type PostService struct {
	posts    ports.PostRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, notifier ports.Notifier, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, notifier: notifier, logger: logger}
}

func (s *PostService) Create(ctx context.Context, authorID, content, image string) (*domain.Post, error) {
	post := &domain.Post{
		Author:    authorID,
		Content:   content,
		Image:     image,
		Likes:     []string{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author", authorID).Msg("post created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Feed(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx, feedLimit)
}

func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	liked, err := s.posts.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Only a fresh like notifies; unliking is silent. The dedup layer keeps
	// like/unlike/like cycles from producing repeats.
	if liked && post.Author != userID {
		s.notifier.Notify(ports.NotificationInput{
			Recipient: post.Author,
			Actor:     userID,
			Kind:      domain.NotifPostLike,
			Ref:       postID,
		})
	}

	return post, nil
}

func (s *PostService) Comment(ctx context.Context, postID, userID, text string) (*domain.Post, error) {
	comment := domain.Comment{
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Author != userID {
		s.notifier.Notify(ports.NotificationInput{
			Recipient: post.Author,
			Actor:     userID,
			Kind:      domain.NotifPostComment,
			Ref:       postID,
		})
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, postID, actorID string, actorRole domain.Role) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Author != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", postID).Str("actor", actorID).Msg("post deleted")
	return nil
}
