package settings

import (
	"context"
	"time"

	settingsRepo "hireloop/database/repository/settings"
	"hireloop/models"
	"hireloop/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type SettingsService interface {
	// GetSnapshot returns a value copy of the current settings.
	GetSnapshot(ctx context.Context) (models.AdminSettings, error)
	Update(ctx context.Context, patch models.SettingsPatch, updatedBy string) (models.AdminSettings, error)
}

// DefaultSettingsService reads through an optional cache. A nil Cache reads
// MongoDB on every call.
type DefaultSettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Cache SettingsCache
	TTL   time.Duration
}

func (s *DefaultSettingsService) GetSnapshot(ctx context.Context) (models.AdminSettings, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx)
		if err != nil {
			logger.Warn("settings cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached.Clone(), nil
		}
	}

	return s.refresh(ctx)
}

// refresh loads the stored row (or the defaults) and rewrites the cache.
func (s *DefaultSettingsService) refresh(ctx context.Context) (models.AdminSettings, error) {
	logger := utils.GetLogger()

	stored, err := s.Repo.Get(ctx)
	if err != nil {
		logger.Error("Failed to load settings", zap.Error(err))
		return models.AdminSettings{}, utils.NewDatabaseError(err)
	}
	snapshot := models.DefaultSettings()
	if stored != nil {
		snapshot = stored.Clone()
		if snapshot.SEO.MetaKeywords == nil {
			snapshot.SEO.MetaKeywords = []string{}
		}
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, snapshot, s.ttl()); err != nil {
			logger.Warn("settings cache write failed", zap.Error(err))
		}
	}
	return snapshot.Clone(), nil
}

// Update shallow-merges the keys present in patch and returns the fresh
// snapshot.
func (s *DefaultSettingsService) Update(ctx context.Context, patch models.SettingsPatch, updatedBy string) (models.AdminSettings, error) {
	logger := utils.GetLogger()

	fields := bson.M(patch.Fields())
	if len(fields) == 0 {
		return models.AdminSettings{}, utils.NewValidationError("No settings provided")
	}
	fields["updated_at"] = time.Now()
	if updatedBy != "" {
		fields["updated_by"] = updatedBy
	}

	if err := s.Repo.Merge(ctx, fields); err != nil {
		logger.Error("Failed to update settings", zap.String("updatedBy", updatedBy), zap.Error(err))
		return models.AdminSettings{}, utils.NewDatabaseError(err)
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			logger.Warn("settings cache invalidation failed", zap.Error(err))
		}
	}
	logger.Info("settings updated", zap.String("updatedBy", updatedBy), zap.Int("fields", len(fields)-1))
	return s.refresh(ctx)
}

func (s *DefaultSettingsService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return utils.DefaultSettingsCacheTTL
}
