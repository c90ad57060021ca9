package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRecordRepo) ListReviewsByWorker(ctx context.Context, workerID string, page models.Pagination) ([]models.Review, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"worker_id": workerID}
	total, err := r.reviews.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	p := page.Normalize()
	cursor, err := r.reviews.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Review{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return out, total, nil
}

func (r *mongoRecordRepo) ReviewSummary(ctx context.Context, workerID string) (float64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var pipeline mongo.Pipeline
	if workerID != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"worker_id": workerID}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}})

	cursor, err := r.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("review aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var row struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return 0, 0, fmt.Errorf("failed to decode review summary: %w", err)
		}
	}
	return row.Avg, row.Count, cursor.Err()
}

func (r *mongoRecordRepo) ListBookingsInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"worker_id":  workerID,
		"start_time": bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := r.bookings.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Booking{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return out, nil
}

func (r *mongoRecordRepo) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.bookings.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("booking aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	counts := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode booking count: %w", err)
		}
		counts[row.ID] = row.Count
	}
	return counts, cursor.Err()
}
