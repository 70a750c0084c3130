package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

const suggestionLimit = 10

// ConnectionPolicy tunes connection-graph behaviour.
type ConnectionPolicy struct {
	// RerequestAfterReject allows a new request between a pair whose previous
	// request ended in rejection, replacing the terminal record. When false
	// the retained rejected record blocks any further request until the pair
	// is removed.
	RerequestAfterReject bool
}

// ConnectionService implements the connection-graph use cases on top of the
// transactional ConnectionStore. It never mutates relationship state itself;
// the store is the only writer.
type ConnectionService struct {
	store    ports.ConnectionStore
	users    ports.UserRepository
	notifier ports.Notifier
	policy   ConnectionPolicy
	logger   zerolog.Logger
}

func NewConnectionService(
	store ports.ConnectionStore,
	users ports.UserRepository,
	notifier ports.Notifier,
	policy ConnectionPolicy,
	logger zerolog.Logger,
) *ConnectionService {
	return &ConnectionService{store: store, users: users, notifier: notifier, policy: policy, logger: logger}
}

func (s *ConnectionService) SendRequest(ctx context.Context, requesterID, recipientID, message string) (*domain.Connection, error) {
	if requesterID == recipientID {
		return nil, domain.ErrSelfConnection
	}

	// Both participants must exist before anything is written.
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		return nil, err
	}

	if requester.IsConnectedTo(recipientID) {
		return nil, domain.ErrAlreadyConnected
	}

	now := time.Now().UTC()
	conn := &domain.Connection{
		PairKey:   domain.PairKey(requesterID, recipientID),
		Requester: requesterID,
		Recipient: recipientID,
		Status:    domain.ConnectionPending,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Duplicate detection happens inside the store via the unique pair key;
	// there is no check-then-create window.
	if err := s.store.CreateRequest(ctx, conn, s.policy.RerequestAfterReject); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("requester", requesterID).
		Str("recipient", recipientID).
		Msg("connection request sent")

	s.notifier.Notify(ports.NotificationInput{
		Recipient: recipientID,
		Actor:     requesterID,
		Kind:      domain.NotifConnectionRequest,
		Ref:       conn.ID,
	})

	return conn, nil
}

func (s *ConnectionService) Accept(ctx context.Context, connectionID, actorID string) error {
	conn, err := s.resolvePending(ctx, connectionID, actorID)
	if err != nil {
		return err
	}

	if err := s.store.Accept(ctx, conn); err != nil {
		return fmt.Errorf("accept connection: %w", err)
	}

	s.logger.Info().
		Str("connection_id", connectionID).
		Str("requester", conn.Requester).
		Str("recipient", conn.Recipient).
		Msg("connection accepted")

	s.notifier.Notify(ports.NotificationInput{
		Recipient: conn.Requester,
		Actor:     conn.Recipient,
		Kind:      domain.NotifConnectionAccepted,
		Ref:       conn.ID,
	})

	return nil
}

func (s *ConnectionService) Reject(ctx context.Context, connectionID, actorID string) error {
	conn, err := s.resolvePending(ctx, connectionID, actorID)
	if err != nil {
		return err
	}

	if err := s.store.Reject(ctx, conn); err != nil {
		return fmt.Errorf("reject connection: %w", err)
	}

	s.logger.Info().
		Str("connection_id", connectionID).
		Str("requester", conn.Requester).
		Msg("connection rejected")

	return nil
}

// resolvePending loads the record and enforces the shared accept/reject
// guards: the record must exist, the actor must be its recipient, and the
// record must still be pending.
func (s *ConnectionService) resolvePending(ctx context.Context, connectionID, actorID string) (*domain.Connection, error) {
	conn, err := s.store.FindByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.Recipient != actorID {
		return nil, domain.ErrForbidden
	}
	if conn.Status.Terminal() {
		return nil, domain.ErrRequestNotPending
	}
	return conn, nil
}

func (s *ConnectionService) Remove(ctx context.Context, userID, peerID string) error {
	if err := s.store.RemovePair(ctx, userID, peerID); err != nil {
		return fmt.Errorf("remove connection: %w", err)
	}

	s.logger.Info().Str("user", userID).Str("peer", peerID).Msg("connection removed")
	return nil
}

func (s *ConnectionService) MyConnections(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.Summaries(ctx, user.Connections)
}

func (s *ConnectionService) Pending(ctx context.Context, userID string) ([]ports.PendingRequest, error) {
	conns, err := s.store.PendingFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	requesterIDs := make([]string, 0, len(conns))
	for _, c := range conns {
		requesterIDs = append(requesterIDs, c.Requester)
	}
	summaries, err := s.users.Summaries(ctx, requesterIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.UserSummary, len(summaries))
	for _, sum := range summaries {
		byID[sum.ID] = sum
	}

	out := make([]ports.PendingRequest, 0, len(conns))
	for _, c := range conns {
		out = append(out, ports.PendingRequest{
			ID:        c.ID,
			Requester: byID[c.Requester],
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

func (s *ConnectionService) Suggestions(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := make([]string, 0, 1+len(user.Connections)+len(user.PendingConnections)+len(user.SentConnections))
	exclude = append(exclude, userID)
	exclude = append(exclude, user.Connections...)
	exclude = append(exclude, user.PendingConnections...)
	exclude = append(exclude, user.SentConnections...)

	return s.users.SummariesExcluding(ctx, exclude, suggestionLimit)
}
