package worker

import (
	"context"
	"errors"
	"strings"
	"time"

	"hireloop/database"
	"hireloop/models"
	"hireloop/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// loadOwnProfile fetches the caller's worker profile.
func (s *DefaultWorkerService) loadOwnProfile(ctx context.Context, userID string) (*models.WorkerProfile, error) {
	profile, err := s.Workers.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if profile == nil {
		return nil, utils.NewNotFoundError("Worker profile not found")
	}
	return profile, nil
}

func (s *DefaultWorkerService) GetWizardState(ctx context.Context, userID string) (*models.WizardState, error) {
	profile, err := s.Workers.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	state := &models.WizardState{CurrentStep: Resume(profile), Profile: profile}
	if profile != nil {
		state.SetupStep = profile.SetupStep
		state.SetupCompleted = profile.SetupCompleted
	}
	return state, nil
}

// SubmitPersonalInfo persists step 1. The user's full name and the profile
// fields are written as one unit.
func (s *DefaultWorkerService) SubmitPersonalInfo(ctx context.Context, userID string, req models.PersonalInfoRequest) (*models.StepResult, error) {
	if err := validatePersonalInfo(req); err != nil {
		return nil, err
	}
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := CanSubmit(profile, StepPersonal); err != nil {
		return nil, err
	}

	now := time.Now()
	doc := bson.M{
		"age":            *req.Age,
		"height":         req.Height,
		"weight":         req.Weight,
		"zodiac_sign":    strings.TrimSpace(req.ZodiacSign),
		"hobbies":        cleanList(req.Hobbies),
		"lifestyle":      strings.TrimSpace(req.Lifestyle),
		"favorite_quote": strings.TrimSpace(req.FavoriteQuote),
		"introduction":   strings.TrimSpace(req.Introduction),
		"skills":         cleanList(req.Skills),
		"bio":            strings.TrimSpace(req.Bio),
		"setup_step":     advanceTo(profile, StepService),
		"updated_at":     now,
	}
	if req.IsAvailable != nil {
		doc["is_available"] = *req.IsAvailable
	}

	if err := s.writeNameAndProfile(ctx, userID, strings.TrimSpace(req.FullName), doc); err != nil {
		return nil, err
	}
	return s.stepResult(ctx, userID, Next(StepPersonal))
}

// writeNameAndProfile updates users.full_name and the worker profile in one
// transaction. Without transactions the name is restored when the profile
// write fails.
func (s *DefaultWorkerService) writeNameAndProfile(ctx context.Context, userID, fullName string, profileDoc bson.M) error {
	logger := utils.GetLogger()

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return utils.NewDatabaseError(err)
	}
	if user == nil {
		return utils.NewUserNotFoundError(userID)
	}
	previousName := user.FullName

	err = s.Tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Users.UpdateSetDocument(txCtx, userID, bson.M{"full_name": fullName, "updated_at": time.Now()}); err != nil {
			return err
		}
		if err := s.Workers.UpdateSetDocument(txCtx, userID, profileDoc); err != nil {
			if !s.Tx.Atomic() && previousName != fullName {
				if rbErr := s.Users.UpdateSetDocument(ctx, userID, bson.M{"full_name": previousName}); rbErr != nil {
					logger.Error("failed to restore full name after profile write failure",
						zap.String("userID", userID), zap.Error(rbErr))
				}
			}
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error("personal info write failed", zap.String("userID", userID), zap.Error(err))
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewNotFoundError("Worker profile not found")
		}
		return utils.NewDatabaseError(err)
	}
	return nil
}

// SubmitServiceSelection persists step 2.
func (s *DefaultWorkerService) SubmitServiceSelection(ctx context.Context, userID string, req models.ServiceSelectionRequest) (*models.StepResult, error) {
	req = normalizeSelection(req)
	if err := validateServiceSelection(req); err != nil {
		return nil, err
	}
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := CanSubmit(profile, StepService); err != nil {
		return nil, err
	}

	doc := bson.M(selectionDocument(req))
	pricing := PrunePricing(profile.ServicePricing, req.ServiceType, req.ServiceCategories)
	for k, v := range pricingDocument(pricing, req.ServiceType, req.ServiceCategories) {
		doc[k] = v
	}
	doc["setup_step"] = advanceTo(profile, StepPricing)
	// A finished worker whose new selection has no price goes back to step 3.
	if profile.SetupCompleted && !PricingComplete(pricing, req.ServiceType, req.ServiceCategories) {
		doc["setup_step"] = StepPricing
		doc["setup_completed"] = false
	}
	doc["updated_at"] = time.Now()

	if err := s.Workers.UpdateSetDocument(ctx, userID, doc); err != nil {
		utils.GetLogger().Error("service selection write failed", zap.String("userID", userID), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}
	return s.stepResult(ctx, userID, Next(StepService))
}

// SubmitPricing persists step 3 and completes the wizard.
func (s *DefaultWorkerService) SubmitPricing(ctx context.Context, userID string, req models.PricingRequest) (*models.StepResult, error) {
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := CanSubmit(profile, StepPricing); err != nil {
		return nil, err
	}
	pricing, err := buildPricing(profile, req)
	if err != nil {
		return nil, err
	}

	doc := bson.M(pricingDocument(pricing, profile.ServiceType, profile.ServiceCategories))
	doc["setup_step"] = StepDone
	doc["setup_completed"] = true
	doc["updated_at"] = time.Now()

	if err := s.Workers.UpdateSetDocument(ctx, userID, doc); err != nil {
		utils.GetLogger().Error("pricing write failed", zap.String("userID", userID), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}

	updated, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.StepResult{Profile: updated, Completed: true, RedirectTo: ProfileEditPath}, nil
}

func (s *DefaultWorkerService) stepResult(ctx context.Context, userID string, next int) (*models.StepResult, error) {
	updated, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.StepResult{Profile: updated, NextStep: next, Completed: updated.SetupCompleted}, nil
}

// PreviewRate returns the derived rates shown while the worker types.
func (s *DefaultWorkerService) PreviewRate(hourly float64, minBookingHours int) (models.ServiceRate, error) {
	if hourly <= 0 {
		return models.ServiceRate{}, utils.NewValidationError("Hourly rate must be greater than 0")
	}
	return NewServiceRate(hourly, minBookingHours), nil
}
