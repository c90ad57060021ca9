package workerRepo

import (
	"context"
	"fmt"
	"time"

	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildFilter translates a WorkerFilter into a match document.
func buildFilter(f models.WorkerFilter) bson.M {
	match := bson.M{}
	if f.PublicOnly {
		match["setup_completed"] = true
		match["approval_status"] = models.ApprovalApproved
		match["account_status"] = models.AccountActive
	}
	if f.ApprovalStatus != "" && !f.PublicOnly {
		match["approval_status"] = f.ApprovalStatus
	}
	if f.AccountStatus != "" && !f.PublicOnly {
		match["account_status"] = f.AccountStatus
	}
	if f.ServiceType != "" {
		match["service_type"] = f.ServiceType
	}
	if f.Category != "" {
		match["service_categories"] = f.Category
	}
	if f.Level > 0 {
		match["service_level"] = f.Level
	}
	if f.Language != "" {
		match["service_languages"] = f.Language
	}
	if f.Available != nil {
		match["is_available"] = *f.Available
	}
	if f.IDs != nil {
		match["id"] = bson.M{"$in": f.IDs}
	}
	return match
}

func (r *MongoWorkerRepo) Search(ctx context.Context, f models.WorkerFilter) ([]models.WorkerProfile, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := buildFilter(f)
	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count worker profiles: %w", err)
	}

	page := f.Pagination.Normalize()
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search worker profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.WorkerProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, 0, fmt.Errorf("failed to decode worker profiles: %w", err)
	}
	return profiles, total, nil
}

func (r *MongoWorkerRepo) CountGrouped(ctx context.Context, field string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
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
			return nil, fmt.Errorf("failed to decode %s count: %w", field, err)
		}
		counts[row.ID] = row.Count
	}
	return counts, cursor.Err()
}
