package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// ConnectionStore is the single authoritative writer of relationship state.
// Every mutator updates the connection record and both participants' mirror
// sets (connections / pending_connections / sent_connections) in one atomic
// transaction, so partial writes are never observable.
//
// Pair uniqueness is enforced by the store itself (unique index on the
// order-independent pair key), not by a read-then-write check.
type ConnectionStore interface {
	// CreateRequest inserts a pending record and marks both users' sent and
	// pending mirrors. Returns domain.ErrRequestExists when a record for the
	// pair already exists. When replaceRejected is true, an existing record
	// in the rejected state is replaced by the new request instead.
	CreateRequest(ctx context.Context, conn *domain.Connection, replaceRejected bool) error

	FindByID(ctx context.Context, id string) (*domain.Connection, error)

	// Accept transitions the record to accepted, adds each participant to the
	// other's connections set, and clears the pending/sent mirrors.
	Accept(ctx context.Context, conn *domain.Connection) error

	// Reject transitions the record to rejected and clears the pending/sent
	// mirrors. The record is retained with terminal status.
	Reject(ctx context.Context, conn *domain.Connection) error

	// RemovePair pulls each user from the other's connections set and deletes
	// any record for the pair regardless of status. Removing a pair with no
	// relationship is a no-op, not an error.
	RemovePair(ctx context.Context, userID, peerID string) error

	// PendingFor returns all pending records whose recipient is userID.
	PendingFor(ctx context.Context, userID string) ([]*domain.Connection, error)
}
