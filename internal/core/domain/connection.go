package domain

import "time"

// ConnectionStatus represents the lifecycle state of a connection request.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// Terminal reports whether the status is one of the two terminal states.
// A terminal record is never transitioned again, only deleted or replaced.
func (s ConnectionStatus) Terminal() bool {
	return s == ConnectionAccepted || s == ConnectionRejected
}

// Connection is a directed request record between two users. PairKey is the
// order-independent key for the pair and carries a unique index, so at most
// one record can exist between any two users at a time regardless of which
// side initiated.
type Connection struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	PairKey   string           `json:"-" bson:"pair_key"`
	Requester string           `json:"requester" bson:"requester"`
	Recipient string           `json:"recipient" bson:"recipient"`
	Status    ConnectionStatus `json:"status" bson:"status"`
	Message   string           `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// PairKey builds the canonical order-independent key for two user ids.
func PairKey(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

// Peer returns the other participant of the record relative to userID.
func (c *Connection) Peer(userID string) string {
	if c.Requester == userID {
		return c.Recipient
	}
	return c.Requester
}
