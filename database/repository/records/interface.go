package recordsRepo

import (
	"context"
	"time"

	"hireloop/database"
	"hireloop/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecordsRepository reads the bookings and reviews collections.
type RecordsRepository interface {
	ListReviewsByWorker(ctx context.Context, workerID string, page models.Pagination) ([]models.Review, int64, error)
	// ReviewSummary returns the average rating and review count; an empty
	// workerID summarizes every review.
	ReviewSummary(ctx context.Context, workerID string) (float64, int64, error)
	ListBookingsInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error)
	CountBookingsByStatus(ctx context.Context) (map[string]int64, error)
}

type mongoRecordRepo struct {
	bookings *mongo.Collection
	reviews  *mongo.Collection
}

// NewMongoRecordRepo returns a RecordsRepository backed by MongoDB.
func NewMongoRecordRepo() RecordsRepository {
	db := database.DB()
	return &mongoRecordRepo{
		bookings: db.Collection("bookings"),
		reviews:  db.Collection("reviews"),
	}
}
