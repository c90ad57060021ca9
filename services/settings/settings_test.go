package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireloop/models"
	"hireloop/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type stubRepo struct {
	stored   *models.AdminSettings
	reads    int
	mergeErr error
}

func (r *stubRepo) Get(ctx context.Context) (*models.AdminSettings, error) {
	r.reads++
	if r.stored == nil {
		return nil, nil
	}
	cp := r.stored.Clone()
	return &cp, nil
}

func (r *stubRepo) Merge(ctx context.Context, fields bson.M) error {
	if r.mergeErr != nil {
		return r.mergeErr
	}
	base := models.AdminSettings{ID: models.SettingsID}
	if r.stored != nil {
		base = *r.stored
	}
	raw, err := bson.Marshal(base)
	if err != nil {
		return err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	for k, v := range fields {
		m[k] = v
	}
	if raw, err = bson.Marshal(m); err != nil {
		return err
	}
	var out models.AdminSettings
	if err := bson.Unmarshal(raw, &out); err != nil {
		return err
	}
	r.stored = &out
	return nil
}

type memoryCache struct {
	value       *models.AdminSettings
	ttl         time.Duration
	invalidated int
	getErr      error
}

func (c *memoryCache) Get(ctx context.Context) (*models.AdminSettings, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.value == nil {
		return nil, nil
	}
	cp := c.value.Clone()
	return &cp, nil
}

func (c *memoryCache) Set(ctx context.Context, s models.AdminSettings, ttl time.Duration) error {
	cp := s.Clone()
	c.value, c.ttl = &cp, ttl
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context) error {
	c.value = nil
	c.invalidated++
	return nil
}

func TestGetSnapshotDefaults(t *testing.T) {
	cache := &memoryCache{}
	svc := &DefaultSettingsService{Repo: &stubRepo{}, Cache: cache}

	s, err := svc.GetSnapshot(context.Background())
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if s.SiteTitle != "HireLoop" || s.SEO.MetaKeywords == nil {
		t.Errorf("unexpected defaults %+v", s)
	}
	if cache.value == nil || cache.ttl != utils.DefaultSettingsCacheTTL {
		t.Errorf("defaults not cached with the default ttl: %v", cache.ttl)
	}
}

func TestGetSnapshotUsesCache(t *testing.T) {
	repo := &stubRepo{stored: &models.AdminSettings{ID: models.SettingsID, SiteTitle: "Stored"}}
	svc := &DefaultSettingsService{Repo: repo, Cache: &memoryCache{}, TTL: time.Minute}

	for i := 0; i < 3; i++ {
		s, err := svc.GetSnapshot(context.Background())
		if err != nil || s.SiteTitle != "Stored" {
			t.Fatalf("GetSnapshot() = %+v, %v", s, err)
		}
	}
	if repo.reads != 1 {
		t.Errorf("expected a single repository read, got %d", repo.reads)
	}
}

func TestGetSnapshotIsACopy(t *testing.T) {
	repo := &stubRepo{stored: &models.AdminSettings{SEO: models.SEOSettings{MetaKeywords: []string{"jobs"}}}}
	svc := &DefaultSettingsService{Repo: repo, Cache: &memoryCache{}}

	s, _ := svc.GetSnapshot(context.Background())
	s.SEO.MetaKeywords[0] = "mutated"

	again, _ := svc.GetSnapshot(context.Background())
	if again.SEO.MetaKeywords[0] != "jobs" {
		t.Errorf("snapshot shares state with the cache")
	}
}

func TestCacheErrorFallsBackToRepository(t *testing.T) {
	repo := &stubRepo{stored: &models.AdminSettings{SiteTitle: "Stored"}}
	svc := &DefaultSettingsService{Repo: repo, Cache: &memoryCache{getErr: errors.New("redis down")}}

	s, err := svc.GetSnapshot(context.Background())
	if err != nil || s.SiteTitle != "Stored" {
		t.Fatalf("GetSnapshot() = %+v, %v", s, err)
	}
}

func TestUpdateInvalidatesAndRefreshes(t *testing.T) {
	repo := &stubRepo{stored: &models.AdminSettings{ID: models.SettingsID, SiteTitle: "Old", SiteDescription: "Keep me"}}
	cache := &memoryCache{}
	svc := &DefaultSettingsService{Repo: repo, Cache: cache}

	if _, err := svc.GetSnapshot(context.Background()); err != nil {
		t.Fatal(err)
	}

	title := "New"
	updated, err := svc.Update(context.Background(), models.SettingsPatch{SiteTitle: &title}, "ops@example.com")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.SiteTitle != "New" || updated.SiteDescription != "Keep me" {
		t.Errorf("merge lost fields: %+v", updated)
	}
	if updated.UpdatedBy != "ops@example.com" || updated.UpdatedAt.IsZero() {
		t.Errorf("audit fields missing: %q %v", updated.UpdatedBy, updated.UpdatedAt)
	}
	if cache.invalidated != 1 {
		t.Errorf("cache invalidated %d times", cache.invalidated)
	}

	s, _ := svc.GetSnapshot(context.Background())
	if s.SiteTitle != "New" {
		t.Errorf("stale snapshot after update: %q", s.SiteTitle)
	}
}

func TestUpdateErrors(t *testing.T) {
	svc := &DefaultSettingsService{Repo: &stubRepo{mergeErr: errors.New("write conflict")}}

	if _, err := svc.Update(context.Background(), models.SettingsPatch{}, ""); !utils.IsCode(err, utils.ErrCodeValidation) {
		t.Errorf("empty patch: %v", err)
	}

	maintenance := true
	_, err := svc.Update(context.Background(), models.SettingsPatch{MaintenanceMode: &maintenance}, "")
	if !utils.IsCode(err, utils.ErrCodeDatabase) {
		t.Fatalf("expected database error, got %v", err)
	}
	if utils.AsAppError(err).Message != "write conflict" {
		t.Errorf("message = %q", utils.AsAppError(err).Message)
	}
}

func TestWithoutCacheReadsRepository(t *testing.T) {
	repo := &stubRepo{stored: &models.AdminSettings{ID: models.SettingsID, SiteTitle: "Stored"}}
	svc := &DefaultSettingsService{Repo: repo}

	for i := 0; i < 2; i++ {
		if s, err := svc.GetSnapshot(context.Background()); err != nil || s.SiteTitle != "Stored" {
			t.Fatalf("GetSnapshot() = %+v, %v", s, err)
		}
	}
	if repo.reads != 2 {
		t.Errorf("reads = %d, want one per request", repo.reads)
	}

	title := "New"
	if s, err := svc.Update(context.Background(), models.SettingsPatch{SiteTitle: &title}, "ops@example.com"); err != nil || s.SiteTitle != "New" {
		t.Errorf("Update() = %+v, %v", s, err)
	}
}
