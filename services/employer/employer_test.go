package employer

import (
	"context"
	"testing"
	"time"

	"hireloop/database"
	"hireloop/models"
	"hireloop/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type stubRepo struct {
	profiles map[string]*models.EmployerProfile
	writes   int
}

func (r *stubRepo) EnsureExists(ctx context.Context, p *models.EmployerProfile) (bool, error) {
	return false, nil
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*models.EmployerProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubRepo) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	r.writes++
	p, ok := r.profiles[id]
	if !ok {
		return database.ErrNotFound
	}
	for k, v := range doc {
		s, _ := v.(string)
		switch k {
		case "company_name":
			p.CompanyName = s
		case "contact_person":
			p.ContactPerson = s
		case "location":
			p.Location = s
		case "bio":
			p.Bio = s
		case "avatar_url":
			p.AvatarURL = s
		}
	}
	return nil
}

func (r *stubRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	return nil
}

func (r *stubRepo) Search(ctx context.Context, f models.EmployerFilter) ([]models.EmployerProfile, int64, error) {
	return nil, 0, nil
}

func (r *stubRepo) CountGrouped(ctx context.Context, field string) (map[string]int64, error) {
	return nil, nil
}

func (r *stubRepo) ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func ptr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	repo := &stubRepo{profiles: map[string]*models.EmployerProfile{"e1": models.NewEmployerProfile("e1")}}
	svc := &DefaultEmployerService{Repo: repo}
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "e1", models.EmployerProfileUpdate{Location: ptr("Bangkok")})
	if got := utils.AsAppError(err).Message; got != "Company name or contact person is required" {
		t.Fatalf("unexpected result: %v", err)
	}

	p, err := svc.UpdateProfile(ctx, "e1", models.EmployerProfileUpdate{CompanyName: ptr("  Siam Events "), Location: ptr("Bangkok")})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if p.CompanyName != "Siam Events" || p.Location != "Bangkok" {
		t.Errorf("unexpected profile %+v", p)
	}

	if _, err := svc.UpdateProfile(ctx, "e1", models.EmployerProfileUpdate{CompanyName: ptr(" ")}); !utils.IsCode(err, utils.ErrCodeValidation) {
		t.Errorf("clearing the only name should fail, got %v", err)
	}

	writes := repo.writes
	if _, err := svc.UpdateProfile(ctx, "e1", models.EmployerProfileUpdate{}); err != nil || repo.writes != writes {
		t.Errorf("empty update should be a no-op: %v, writes %d -> %d", err, writes, repo.writes)
	}

	if _, err := svc.GetProfile(ctx, "ghost"); !utils.IsCode(err, utils.ErrCodeNotFound) {
		t.Errorf("unknown employer: %v", err)
	}
}
