package workerRepo

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

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

func NewMongoWorkerRepo() WorkerRepository {
	repo := &MongoWorkerRepo{coll: database.DB().Collection("worker_profiles")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("worker_profiles: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoWorkerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "approval_status", Value: 1}, {Key: "account_status", Value: 1}}},
		{Keys: bson.D{{Key: "service_type", Value: 1}, {Key: "service_categories", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoWorkerRepo) EnsureExists(ctx context.Context, profile *models.WorkerProfile) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": profile.ID},
		bson.M{"$setOnInsert": profile},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure worker profile %s: %w", profile.ID, err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *MongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.WorkerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.WorkerProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker profile %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoWorkerRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	return r.UpdateWithDocument(ctx, id, bson.M{"$set": updateDoc})
}

func (r *MongoWorkerRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update worker profile %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker profile %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoWorkerRepo) PullFromArray(ctx context.Context, id, field string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pullCondition any
	switch v := value.(type) {
	case []string:
		pullCondition = bson.M{"$in": v}
	default:
		pullCondition = v
	}

	update := bson.M{
		"$pull": bson.M{field: pullCondition},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to pull from %s for worker %s: %w", field, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker profile %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoWorkerRepo) ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
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
		return 0, fmt.Errorf("failed to release expired suspensions of worker profiles: %w", err)
	}
	return result.ModifiedCount, nil
}
