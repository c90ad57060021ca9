package settingsRepo

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

// SettingsRepository reads and merges the single admin_settings document.
type SettingsRepository interface {
	// Get returns the stored settings or (nil, nil) when none were saved.
	Get(ctx context.Context) (*models.AdminSettings, error)
	// Merge sets the given top-level keys, creating the row when needed.
	Merge(ctx context.Context, fields bson.M) error
}

type MongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.DB().Collection("admin_settings")}
}

func (r *MongoSettingsRepo) Get(ctx context.Context) (*models.AdminSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.AdminSettings
	err := r.coll.FindOne(ctx, bson.M{"id": models.SettingsID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin settings: %w", err)
	}
	return &s, nil
}

func (r *MongoSettingsRepo) Merge(ctx context.Context, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Defaults fill keys the first write leaves out.
	defaults := models.DefaultSettings()
	seed := bson.M{
		"site_title":       defaults.SiteTitle,
		"site_description": defaults.SiteDescription,
		"branding":         defaults.Branding,
		"seo":              defaults.SEO,
		"contact":          defaults.Contact,
		"social_links":     defaults.SocialLinks,
		"footer":           defaults.Footer,
		"maintenance_mode": defaults.MaintenanceMode,
	}
	onInsert := bson.M{}
	for key, val := range seed {
		if _, set := fields[key]; !set {
			onInsert[key] = val
		}
	}

	update := bson.M{"$set": fields, "$setOnInsert": onInsert}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": models.SettingsID}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to update admin settings: %w", err)
	}
	return nil
}
