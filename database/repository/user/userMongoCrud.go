// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"hireloop/database"
	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert inserts the user or refreshes its registration fields. Role changes
// on an existing record are ignored.
func (r *MongoUserRepo) Upsert(ctx context.Context, user *models.User) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.UpdatedAt = now

	set := bson.M{
		"email":      user.Email,
		"updated_at": now,
	}
	onInsert := bson.M{
		"id":         user.ID,
		"role":       user.Role,
		"created_at": now,
	}
	if user.Phone != "" {
		set["phone"] = user.Phone
	}
	if user.PreferredLanguage != "" {
		set["preferred_language"] = user.PreferredLanguage
	} else {
		onInsert["preferred_language"] = models.DefaultLanguage
	}
	update := bson.M{"$set": set, "$setOnInsert": onInsert}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": user.ID}, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("failed to upsert user %s: %w: %v", user.ID, database.ErrDuplicateKey, err)
	}
	if err != nil {
		return false, fmt.Errorf("failed to upsert user %s: %w", user.ID, err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *MongoUserRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	// Wrap in $set to comply with MongoDB update syntax
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s: %w", id, database.ErrNotFound)
	}
	return nil
}
