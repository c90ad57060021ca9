package reportsRepo

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
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	// GetByID returns the report or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Report, error)
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	List(ctx context.Context, filter models.ReportFilter) ([]models.Report, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type MongoReportRepo struct {
	coll *mongo.Collection
}

func NewMongoReportRepo() ReportRepository {
	return &MongoReportRepo{coll: database.DB().Collection("reports")}
}

func (r *MongoReportRepo) Create(ctx context.Context, report *models.Report) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *MongoReportRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rep models.Report
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rep)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report %s: %w", id, err)
	}
	return &rep, nil
}

func (r *MongoReportRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update report %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("report %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoReportRepo) List(ctx context.Context, f models.ReportFilter) ([]models.Report, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{}
	if f.Status != "" {
		match["status"] = f.Status
	}
	if f.TargetType != "" {
		match["target_type"] = f.TargetType
	}
	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}
	page := f.Pagination.Normalize()
	cursor, err := r.coll.Find(ctx, match, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Report{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reports: %w", err)
	}
	return out, total, nil
}

func (r *MongoReportRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s reports: %w", status, err)
	}
	return n, nil
}
