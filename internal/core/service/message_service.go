package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// MessageService implements direct messaging.
type MessageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewMessageService(
	messages ports.MessageRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *MessageService {
	return &MessageService{messages: messages, users: users, notifier: notifier, logger: logger}
}

func (s *MessageService) Send(ctx context.Context, senderID, recipientID, body string) (*domain.Message, error) {
	if senderID == recipientID {
		return nil, domain.ErrSelfConnection
	}
	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		PairKey:   domain.PairKey(senderID, recipientID),
		Sender:    senderID,
		Recipient: recipientID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		Recipient: recipientID,
		Actor:     senderID,
		Kind:      domain.NotifMessage,
		Ref:       created.ID,
	})

	return created, nil
}

func (s *MessageService) ConversationWith(ctx context.Context, userID, peerID string) ([]*domain.Message, error) {
	msgs, err := s.messages.Conversation(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}

	// Marking incoming messages read is best-effort; the thread is returned
	// either way.
	if err := s.messages.MarkConversationRead(ctx, userID, peerID); err != nil {
		s.logger.Warn().Err(err).Str("user", userID).Str("peer", peerID).Msg("failed to mark conversation read")
	}

	return msgs, nil
}

func (s *MessageService) Inbox(ctx context.Context, userID string) ([]ports.ConversationHead, error) {
	heads, err := s.messages.Heads(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Resolve peer summaries in one lookup.
	peerIDs := make([]string, 0, len(heads))
	for _, h := range heads {
		peerIDs = append(peerIDs, h.LastMessage.Peer(userID))
	}
	summaries, err := s.users.Summaries(ctx, peerIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.UserSummary, len(summaries))
	for _, sum := range summaries {
		byID[sum.ID] = sum
	}
	for i := range heads {
		heads[i].Peer = byID[heads[i].LastMessage.Peer(userID)]
	}

	return heads, nil
}
