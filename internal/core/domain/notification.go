package domain

import "time"

// NotificationKind identifies the event that produced a notification.
type NotificationKind string

const (
	NotifConnectionRequest  NotificationKind = "connection_request"
	NotifConnectionAccepted NotificationKind = "connection_accepted"
	NotifPostLike           NotificationKind = "post_like"
	NotifPostComment        NotificationKind = "post_comment"
	NotifApplicationStatus  NotificationKind = "application_status"
	NotifMessage            NotificationKind = "message"
)

// Notification is a best-effort activity record for a recipient. Ref points
// at the document the event concerns (connection, post, job or message id).
type Notification struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	Recipient string           `json:"recipient" bson:"recipient"`
	Actor     string           `json:"actor" bson:"actor"`
	Kind      NotificationKind `json:"kind" bson:"kind"`
	Ref       string           `json:"ref,omitempty" bson:"ref,omitempty"`
	Read      bool             `json:"read" bson:"read"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}
