package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// NotificationInput is one queued notification event prior to persistence.
type NotificationInput struct {
	Recipient string
	Actor     string
	Kind      domain.NotificationKind
	Ref       string
}

// Notifier enqueues a notification for asynchronous delivery. Implementations
// must never block the caller beyond channel capacity and must never fail the
// triggering request.
type Notifier interface {
	Notify(input NotificationInput)
}

// NotificationRepository defines persistence for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// MarkRead flags one notification; scoped to userID so users cannot touch
	// each other's notifications.
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id, userID string) error
}

// NotificationService processes queued events and serves the REST surface.
type NotificationService interface {
	// Process deduplicates and persists one event. Called by dispatcher workers.
	Process(ctx context.Context, input NotificationInput) error

	List(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id, userID string) error
}
