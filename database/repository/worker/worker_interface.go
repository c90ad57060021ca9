package workerRepo

import (
	"context"
	"time"

	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
)

// WorkerRepository defines methods for worker_profiles access.
type WorkerRepository interface {
	// EnsureExists inserts the default profile row when none exists and
	// reports whether it did.
	EnsureExists(ctx context.Context, profile *models.WorkerProfile) (bool, error)
	// GetByID returns the profile or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.WorkerProfile, error)
	// UpdateSetDocument applies a $set; database.ErrNotFound when no row matches.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	// UpdateWithDocument applies a raw update document ($set, $inc, $unset...).
	UpdateWithDocument(ctx context.Context, id string, update bson.M) error
	// PullFromArray removes value from an array field.
	PullFromArray(ctx context.Context, id, field string, value any) error
	// Search lists profiles matching the filter, newest first.
	Search(ctx context.Context, filter models.WorkerFilter) ([]models.WorkerProfile, int64, error)
	// CountGrouped counts profiles grouped by the value of field.
	CountGrouped(ctx context.Context, field string) (map[string]int64, error)
	// ReleaseExpiredSuspensions reactivates suspensions that ended before now.
	ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error)
}
