package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkup/linkup-api/internal/core/domain"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	post.ID = primitive.NewObjectID().Hex()
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []domain.Comment{}
	}

	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var post domain.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) List(ctx context.Context, limit int) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}

	var posts []*domain.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips userID's membership in the like set. A conditional $pull
// first removes an existing like; when nothing matched, $addToSet records a
// fresh one. Both writes are single-document, so no transaction is needed.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, fmt.Errorf("unlike post: %w", err)
	}
	if res.MatchedCount > 0 {
		return false, nil
	}

	res, err = r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, fmt.Errorf("like post: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, domain.ErrPostNotFound
	}
	return true, nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID string, comment domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the posts collection.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
