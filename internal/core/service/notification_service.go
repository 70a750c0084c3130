package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// DedupChecker abstracts the notification idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, recipient, actor, kind, ref string) (bool, error)
	Mark(ctx context.Context, recipient, actor, kind, ref string) error
}

type notificationService struct {
	repo   ports.NotificationRepository
	dedup  DedupChecker
	logger zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, dedup DedupChecker, logger zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, dedup: dedup, logger: logger}
}

// Process deduplicates and persists a single notification event. Called from
// dispatcher workers, never from a request path.
func (s *notificationService) Process(ctx context.Context, in ports.NotificationInput) error {
	kind := string(in.Kind)

	// Dedup check — repeats inside the TTL window are silently dropped. A
	// failing check is logged and processing continues: a duplicate
	// notification beats a lost one.
	isDup, err := s.dedup.IsDuplicate(ctx, in.Recipient, in.Actor, kind, in.Ref)
	if err != nil {
		s.logger.Warn().Err(err).Str("recipient", in.Recipient).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.logger.Debug().
			Str("recipient", in.Recipient).
			Str("kind", kind).
			Msg("duplicate notification skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.Recipient, in.Actor, kind, in.Ref); markErr != nil {
		s.logger.Warn().Err(markErr).Str("recipient", in.Recipient).Msg("failed to set dedup key")
	}

	n := &domain.Notification{
		Recipient: in.Recipient,
		Actor:     in.Actor,
		Kind:      in.Kind,
		Ref:       in.Ref,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	s.logger.Info().
		Str("recipient", in.Recipient).
		Str("actor", in.Actor).
		Str("kind", kind).
		Msg("notification delivered")

	return nil
}

func (s *notificationService) List(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
