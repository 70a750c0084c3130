package ports

import (
	"context"
	"time"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// PendingRequest is one incoming request as shown to the recipient.
type PendingRequest struct {
	ID        string             `json:"id"`
	Requester domain.UserSummary `json:"requester"`
	Message   string             `json:"message,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// ConnectionService defines the connection-graph use cases.
type ConnectionService interface {
	// SendRequest creates a pending request from requester to recipient.
	// Fails with domain.ErrSelfConnection, domain.ErrAlreadyConnected,
	// domain.ErrRequestExists or domain.ErrUserNotFound.
	SendRequest(ctx context.Context, requesterID, recipientID, message string) (*domain.Connection, error)

	// Accept resolves a pending request. Only the record's recipient may
	// accept; anyone else gets domain.ErrForbidden.
	Accept(ctx context.Context, connectionID, actorID string) error

	// Reject resolves a pending request without connecting the pair.
	Reject(ctx context.Context, connectionID, actorID string) error

	// Remove severs a confirmed connection symmetrically and deletes any
	// record between the pair, re-opening it for a fresh request.
	Remove(ctx context.Context, userID, peerID string) error

	MyConnections(ctx context.Context, userID string) ([]domain.UserSummary, error)
	Pending(ctx context.Context, userID string) ([]PendingRequest, error)

	// Suggestions returns up to 10 users with no relationship to userID, in
	// storage order. No ranking is applied.
	Suggestions(ctx context.Context, userID string) ([]domain.UserSummary, error)
}
