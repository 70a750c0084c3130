package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

type JobRepository struct {
	jobs  *mongo.Collection
	users *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{
		jobs:  db.Collection(collectionJobs),
		users: db.Collection(collectionUsers),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	job.ID = primitive.NewObjectID().Hex()
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Applicants == nil {
		job.Applicants = []domain.Applicant{}
	}

	if _, err := r.jobs.InsertOne(ctx, job); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.Job
	if err := r.jobs.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_active": true}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Location != "" {
		query["location"] = containsPattern(filter.Location)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query["$or"] = []bson.M{
			{"title": pattern},
			{"company": pattern},
			{"description": pattern},
		}
	}

	cursor, err := r.jobs.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	var jobs []*domain.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// containsPattern builds a case-insensitive substring match with the user
// input escaped, so filter values cannot inject regex syntax.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func (r *JobRepository) Update(ctx context.Context, id string, update ports.JobUpdate) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Requirements != nil {
		set["requirements"] = *update.Requirements
	}
	if update.Salary != nil {
		set["salary"] = *update.Salary
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var job domain.Job
	err := r.jobs.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.jobs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) AddApplicant(ctx context.Context, jobID string, applicant domain.Applicant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	applicant.ID = primitive.NewObjectID().Hex()

	res, err := r.jobs.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{"$push": bson.M{"applicants": applicant}},
	)
	if err != nil {
		return fmt.Errorf("add applicant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}

	_, err = r.users.UpdateOne(ctx,
		bson.M{"_id": applicant.UserID},
		bson.M{"$push": bson.M{"applied_jobs": domain.AppliedJob{
			JobID:     jobID,
			AppliedAt: applicant.AppliedAt,
			Status:    applicant.Status,
		}}},
	)
	if err != nil {
		return fmt.Errorf("mirror applied job: %w", err)
	}
	return nil
}

func (r *JobRepository) SetApplicantStatus(ctx context.Context, jobID, applicantID string, status domain.ApplicationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.Job
	err := r.jobs.FindOneAndUpdate(ctx,
		bson.M{"_id": jobID, "applicants._id": applicantID},
		bson.M{"$set": bson.M{"applicants.$.status": status}},
	).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrApplicantNotFound
		}
		return fmt.Errorf("set applicant status: %w", err)
	}

	// job holds the pre-update document, enough to locate the applicant's
	// user id for the applied_jobs mirror.
	for i := range job.Applicants {
		if job.Applicants[i].ID != applicantID {
			continue
		}
		_, err = r.users.UpdateOne(ctx,
			bson.M{"_id": job.Applicants[i].UserID, "applied_jobs.job_id": jobID},
			bson.M{"$set": bson.M{"applied_jobs.$.status": status}},
		)
		if err != nil {
			return fmt.Errorf("mirror applicant status: %w", err)
		}
		break
	}
	return nil
}

func (r *JobRepository) SaveForUser(ctx context.Context, jobID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"saved_jobs": jobID}},
	)
	if err != nil {
		return fmt.Errorf("save job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *JobRepository) UnsaveForUser(ctx context.Context, jobID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"saved_jobs": jobID}},
	)
	if err != nil {
		return fmt.Errorf("unsave job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "posted_by", Value: 1}}},
	}

	_, err := r.jobs.Indexes().CreateMany(ctx, indexes)
	return err
}
