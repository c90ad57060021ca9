package employer

import (
	"context"
	"errors"
	"strings"
	"time"

	"hireloop/database"
	employerRepo "hireloop/database/repository/employer"
	"hireloop/models"
	"hireloop/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type EmployerService interface {
	GetProfile(ctx context.Context, userID string) (*models.EmployerProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd models.EmployerProfileUpdate) (*models.EmployerProfile, error)
}

// DefaultEmployerService is the production implementation.
type DefaultEmployerService struct {
	Repo employerRepo.EmployerRepository
}

func (s *DefaultEmployerService) GetProfile(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	p, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if p == nil {
		return nil, utils.NewNotFoundError("Employer profile not found")
	}
	return p, nil
}

// UpdateProfile applies the present fields. The resulting profile must keep
// either a company name or a contact person.
func (s *DefaultEmployerService) UpdateProfile(ctx context.Context, userID string, upd models.EmployerProfileUpdate) (*models.EmployerProfile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc := bson.M{}
	next := *current
	set := func(field string, val *string, dst *string) {
		if val == nil {
			return
		}
		v := strings.TrimSpace(*val)
		doc[field] = v
		*dst = v
	}
	set("company_name", upd.CompanyName, &next.CompanyName)
	set("contact_person", upd.ContactPerson, &next.ContactPerson)
	set("location", upd.Location, &next.Location)
	set("bio", upd.Bio, &next.Bio)
	set("avatar_url", upd.AvatarURL, &next.AvatarURL)

	if next.CompanyName == "" && next.ContactPerson == "" {
		return nil, utils.NewValidationError("Company name or contact person is required")
	}
	if len(doc) == 0 {
		return current, nil
	}

	doc["updated_at"] = time.Now()
	if err := s.Repo.UpdateSetDocument(ctx, userID, doc); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Employer profile not found")
		}
		utils.GetLogger().Error("Failed to update employer profile", zap.String("employerID", userID), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}
	return s.GetProfile(ctx, userID)
}
