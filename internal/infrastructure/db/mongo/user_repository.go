package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// summaryProjection trims user documents down to the list view.
var summaryProjection = bson.M{
	"_id": 1, "name": 1, "headline": 1, "profile_picture": 1, "company": 1, "position": 1,
}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	user.ID = primitive.NewObjectID().Hex()
	// Relationship sets start empty, never nil, so $addToSet and $pull
	// behave uniformly from the first write.
	if user.Connections == nil {
		user.Connections = []string{}
	}
	if user.PendingConnections == nil {
		user.PendingConnections = []string{}
	}
	if user.SentConnections == nil {
		user.SentConnections = []string{}
	}
	if user.SavedJobs == nil {
		user.SavedJobs = []string{}
	}
	if user.AppliedJobs == nil {
		user.AppliedJobs = []domain.AppliedJob{}
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []*domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Headline != nil {
		set["headline"] = *update.Headline
	}
	if update.Summary != nil {
		set["summary"] = *update.Summary
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.ProfilePicture != nil {
		set["profile_picture"] = *update.ProfilePicture
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.Experience != nil {
		set["experience"] = *update.Experience
	}
	if update.Education != nil {
		set["education"] = *update.Education
	}

	var user domain.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Summaries(ctx context.Context, ids []string) ([]domain.UserSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(ids) == 0 {
		return []domain.UserSummary{}, nil
	}

	cursor, err := r.col.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(summaryProjection),
	)
	if err != nil {
		return nil, err
	}

	var out []domain.UserSummary
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) SummariesExcluding(ctx context.Context, exclude []string, limit int) ([]domain.UserSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx,
		bson.M{"_id": bson.M{"$nin": exclude}},
		options.Find().SetProjection(summaryProjection).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}

	var out []domain.UserSummary
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates necessary indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
