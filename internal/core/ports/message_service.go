package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// ConversationHead is the last message of one conversation, used for the
// inbox listing.
type ConversationHead struct {
	Peer        domain.UserSummary `json:"peer"`
	LastMessage domain.Message     `json:"last_message"`
	UnreadCount int                `json:"unread_count"`
}

// MessageRepository defines persistence for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	// Conversation returns every message between the pair, oldest first.
	Conversation(ctx context.Context, userID, peerID string) ([]*domain.Message, error)
	// MarkConversationRead flags all messages sent by peerID to userID as read.
	MarkConversationRead(ctx context.Context, userID, peerID string) error
	// Heads returns the newest message per conversation involving userID,
	// newest conversation first, with unread counts.
	Heads(ctx context.Context, userID string) ([]ConversationHead, error)
}

// MessageService defines messaging use cases.
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID, body string) (*domain.Message, error)
	// ConversationWith returns the full thread and marks incoming messages read.
	ConversationWith(ctx context.Context, userID, peerID string) ([]*domain.Message, error)
	Inbox(ctx context.Context, userID string) ([]ConversationHead, error)
}
