package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// ConnectionStore is the single authoritative writer of relationship state.
// Every mutator runs the connection-record write and both user-document
// mirror updates inside one multi-document transaction, and pair uniqueness
// is enforced by a unique index on pair_key rather than an application-level
// pre-check.
type ConnectionStore struct {
	client *mongo.Client
	conns  *mongo.Collection
	users  *mongo.Collection
}

func NewConnectionStore(db *mongo.Database) *ConnectionStore {
	return &ConnectionStore{
		client: db.Client(),
		conns:  db.Collection(collectionConnections),
		users:  db.Collection(collectionUsers),
	}
}

// inTxn runs fn inside a session transaction with the store's default timeout.
func (s *ConnectionStore) inTxn(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (s *ConnectionStore) CreateRequest(ctx context.Context, conn *domain.Connection, replaceRejected bool) error {
	conn.ID = primitive.NewObjectID().Hex()

	return s.inTxn(ctx, func(sc mongo.SessionContext) error {
		_, err := s.conns.InsertOne(sc, conn)
		if mongo.IsDuplicateKeyError(err) {
			if !replaceRejected {
				return domain.ErrRequestExists
			}
			// Only a terminal-rejected record may be displaced. The filter
			// includes the status, so a pending or accepted record survives
			// and the request still fails.
			res, delErr := s.conns.DeleteOne(sc, bson.M{
				"pair_key": conn.PairKey,
				"status":   domain.ConnectionRejected,
			})
			if delErr != nil {
				return delErr
			}
			if res.DeletedCount == 0 {
				return domain.ErrRequestExists
			}
			if _, err := s.conns.InsertOne(sc, conn); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if _, err := s.users.UpdateOne(sc,
			bson.M{"_id": conn.Requester},
			bson.M{"$addToSet": bson.M{"sent_connections": conn.Recipient}},
		); err != nil {
			return err
		}
		_, err = s.users.UpdateOne(sc,
			bson.M{"_id": conn.Recipient},
			bson.M{"$addToSet": bson.M{"pending_connections": conn.Requester}},
		)
		return err
	})
}

func (s *ConnectionStore) FindByID(ctx context.Context, id string) (*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var conn domain.Connection
	if err := s.conns.FindOne(ctx, bson.M{"_id": id}).Decode(&conn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (s *ConnectionStore) Accept(ctx context.Context, conn *domain.Connection) error {
	return s.inTxn(ctx, func(sc mongo.SessionContext) error {
		res, err := s.conns.UpdateOne(sc,
			bson.M{"_id": conn.ID, "status": domain.ConnectionPending},
			bson.M{"$set": bson.M{"status": domain.ConnectionAccepted, "updated_at": time.Now().UTC()}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return domain.ErrRequestNotPending
		}

		if _, err := s.users.UpdateOne(sc,
			bson.M{"_id": conn.Requester},
			bson.M{
				"$addToSet": bson.M{"connections": conn.Recipient},
				"$pull":     bson.M{"sent_connections": conn.Recipient},
			},
		); err != nil {
			return err
		}
		_, err = s.users.UpdateOne(sc,
			bson.M{"_id": conn.Recipient},
			bson.M{
				"$addToSet": bson.M{"connections": conn.Requester},
				"$pull":     bson.M{"pending_connections": conn.Requester},
			},
		)
		return err
	})
}

func (s *ConnectionStore) Reject(ctx context.Context, conn *domain.Connection) error {
	return s.inTxn(ctx, func(sc mongo.SessionContext) error {
		res, err := s.conns.UpdateOne(sc,
			bson.M{"_id": conn.ID, "status": domain.ConnectionPending},
			bson.M{"$set": bson.M{"status": domain.ConnectionRejected, "updated_at": time.Now().UTC()}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return domain.ErrRequestNotPending
		}

		if _, err := s.users.UpdateOne(sc,
			bson.M{"_id": conn.Requester},
			bson.M{"$pull": bson.M{"sent_connections": conn.Recipient}},
		); err != nil {
			return err
		}
		_, err = s.users.UpdateOne(sc,
			bson.M{"_id": conn.Recipient},
			bson.M{"$pull": bson.M{"pending_connections": conn.Requester}},
		)
		return err
	})
}

func (s *ConnectionStore) RemovePair(ctx context.Context, userID, peerID string) error {
	return s.inTxn(ctx, func(sc mongo.SessionContext) error {
		if _, err := s.users.UpdateOne(sc,
			bson.M{"_id": userID},
			bson.M{"$pull": bson.M{"connections": peerID}},
		); err != nil {
			return err
		}
		if _, err := s.users.UpdateOne(sc,
			bson.M{"_id": peerID},
			bson.M{"$pull": bson.M{"connections": userID}},
		); err != nil {
			return err
		}
		// Any record for the pair goes, terminal or not. Zero matches is fine.
		_, err := s.conns.DeleteOne(sc, bson.M{"pair_key": domain.PairKey(userID, peerID)})
		return err
	})
}

func (s *ConnectionStore) PendingFor(ctx context.Context, userID string) ([]*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := s.conns.Find(ctx,
		bson.M{"recipient": userID, "status": domain.ConnectionPending},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domain.Connection
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the indexes the store relies on. The unique pair_key
// index is load-bearing: it is what makes cross-direction duplicate requests
// impossible without a read-check.
func (s *ConnectionStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "pair_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := s.conns.Indexes().CreateMany(ctx, indexes)
	return err
}
