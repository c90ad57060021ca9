package userRepo

import (
	"context"

	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by id. It returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email. It returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs returns the users with the given ids keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	// Upsert creates the user or updates its mutable fields. It reports whether
	// a new document was inserted.
	Upsert(ctx context.Context, user *models.User) (bool, error)
	// UpdateSetDocument applies a $set to the user.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	// SearchIDs returns ids of users with the role whose name or email
	// contains text, case-insensitive.
	SearchIDs(ctx context.Context, role, text string) ([]string, error)
}
