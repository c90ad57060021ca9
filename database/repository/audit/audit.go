package auditRepo

import (
	"context"
	"fmt"
	"time"

	"hireloop/database"
	"hireloop/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// AuditRepository appends to and reads the admin_actions log.
type AuditRepository interface {
	Insert(ctx context.Context, action *models.AdminAction) error
	List(ctx context.Context, filter models.ActionFilter) ([]models.AdminAction, int64, error)
}

type MongoAuditRepo struct {
	coll *mongo.Collection
}

func NewMongoAuditRepo() AuditRepository {
	repo := &MongoAuditRepo{coll: database.DB().Collection("admin_actions")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		zap.L().Warn("admin_actions: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoAuditRepo) Insert(ctx context.Context, action *models.AdminAction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, action); err != nil {
		return fmt.Errorf("failed to insert admin action: %w", err)
	}
	return nil
}

func (r *MongoAuditRepo) List(ctx context.Context, f models.ActionFilter) ([]models.AdminAction, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{}
	if f.TargetType != "" {
		match["target_type"] = f.TargetType
	}
	if f.TargetID != "" {
		match["target_id"] = f.TargetID
	}
	if f.ActionType != "" {
		match["action_type"] = f.ActionType
	}
	if f.AdminID != "" {
		match["admin_id"] = f.AdminID
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count admin actions: %w", err)
	}
	page := f.Pagination.Normalize()
	cursor, err := r.coll.Find(ctx, match, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admin actions: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.AdminAction{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("failed to decode admin actions: %w", err)
	}
	return out, total, nil
}
