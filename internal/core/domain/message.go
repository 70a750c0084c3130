package domain

import "time"

// Message is one direct message between two users. A conversation is simply
// every message whose pair key matches, oldest first.
type Message struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	PairKey   string    `json:"-" bson:"pair_key"`
	Sender    string    `json:"sender" bson:"sender"`
	Recipient string    `json:"recipient" bson:"recipient"`
	Body      string    `json:"body" bson:"body"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Peer returns the other participant of the message relative to userID.
func (m *Message) Peer(userID string) string {
	if m.Sender == userID {
		return m.Recipient
	}
	return m.Sender
}
