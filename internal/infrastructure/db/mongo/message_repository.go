package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages)}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	msg.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

func (r *MessageRepository) Conversation(ctx context.Context, userID, peerID string) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx,
		bson.M{"pair_key": domain.PairKey(userID, peerID)},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var msgs []*domain.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, userID, peerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"pair_key": domain.PairKey(userID, peerID), "recipient": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("mark conversation read: %w", err)
	}
	return nil
}

// Heads groups the user's messages by conversation and keeps the newest one
// per pair, counting unread incoming messages along the way.
func (r *MessageRepository) Heads(ctx context.Context, userID string) ([]ports.ConversationHead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"sender": userID},
			{"recipient": userID},
		}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$pair_key",
			"last_message": bson.M{"$first": "$$ROOT"},
			"unread": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$recipient", userID}},
					bson.M{"$eq": bson.A{"$read", false}},
				}},
				1, 0,
			}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last_message.created_at", Value: -1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate conversation heads: %w", err)
	}

	var rows []struct {
		LastMessage domain.Message `bson:"last_message"`
		Unread      int            `bson:"unread"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	heads := make([]ports.ConversationHead, 0, len(rows))
	for _, row := range rows {
		heads = append(heads, ports.ConversationHead{
			LastMessage: row.LastMessage,
			UnreadCount: row.Unread,
		})
	}
	return heads, nil
}

// EnsureIndexes creates necessary indexes on the messages collection.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pair_key", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "read", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
