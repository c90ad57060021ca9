package employerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hireloop/database"
	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EmployerRepository defines methods for employer_profiles access.
type EmployerRepository interface {
	EnsureExists(ctx context.Context, profile *models.EmployerProfile) (bool, error)
	// GetByID returns the profile or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.EmployerProfile, error)
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	UpdateWithDocument(ctx context.Context, id string, update bson.M) error
	Search(ctx context.Context, filter models.EmployerFilter) ([]models.EmployerProfile, int64, error)
	CountGrouped(ctx context.Context, field string) (map[string]int64, error)
	ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error)
}

type MongoEmployerRepo struct {
	coll *mongo.Collection
}

func NewMongoEmployerRepo() EmployerRepository {
	repo := &MongoEmployerRepo{coll: database.DB().Collection("employer_profiles")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("employer_profiles: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoEmployerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "account_status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoEmployerRepo) EnsureExists(ctx context.Context, profile *models.EmployerProfile) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": profile.ID},
		bson.M{"$setOnInsert": profile},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure employer profile %s: %w", profile.ID, err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *MongoEmployerRepo) GetByID(ctx context.Context, id string) (*models.EmployerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.EmployerProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employer profile %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoEmployerRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	return r.UpdateWithDocument(ctx, id, bson.M{"$set": updateDoc})
}

func (r *MongoEmployerRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update employer profile %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employer profile %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoEmployerRepo) Search(ctx context.Context, f models.EmployerFilter) ([]models.EmployerProfile, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{}
	if f.AccountStatus != "" {
		match["account_status"] = f.AccountStatus
	}
	if f.IDs != nil {
		match["id"] = bson.M{"$in": f.IDs}
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employer profiles: %w", err)
	}

	page := f.Pagination.Normalize()
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := r.coll.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search employer profiles: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.EmployerProfile{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("failed to decode employer profiles: %w", err)
	}
	return out, total, nil
}

func (r *MongoEmployerRepo) CountGrouped(ctx context.Context, field string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregation on %s failed: %w", field, err)
	}
	defer cursor.Close(ctx)

	counts := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.ID] = row.Count
	}
	return counts, cursor.Err()
}

func (r *MongoEmployerRepo) ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.coll.UpdateMany(ctx,
		bson.M{"account_status": models.AccountSuspended, "suspended_until": bson.M{"$lte": now}},
		bson.M{
			"$set":   bson.M{"account_status": models.AccountActive, "updated_at": now},
			"$unset": bson.M{"suspended_until": ""},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to release expired suspensions of employer profiles: %w", err)
	}
	return result.ModifiedCount, nil
}
