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

const (
	ImageKindGallery = "gallery"
	ImageKindService = "service"
)

func (s *DefaultWorkerService) summarize(ctx context.Context, profile *models.WorkerProfile) (*models.WorkerSummary, error) {
	user, err := s.Users.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	summary := &models.WorkerSummary{WorkerProfile: *profile}
	if user != nil {
		summary.FullName = user.FullName
		summary.Email = user.Email
		summary.AvatarURL = user.AvatarURL
	}
	return summary, nil
}

func (s *DefaultWorkerService) GetOwnProfile(ctx context.Context, userID string) (*models.WorkerSummary, error) {
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, profile)
}

// UpdateProfile applies a single-step partial edit with the wizard's
// validation rules. Changing the service type clears the other branch and any
// pricing change rederives daily and monthly rates.
func (s *DefaultWorkerService) UpdateProfile(ctx context.Context, userID string, upd models.WorkerProfileUpdate) (*models.WorkerSummary, error) {
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc := bson.M{}
	if err := applyPersonalUpdate(doc, upd); err != nil {
		return nil, err
	}

	selection := models.ServiceSelectionRequest{
		GalleryImages:     profile.GalleryImages,
		ServiceImages:     profile.ServiceImages,
		ServiceType:       profile.ServiceType,
		ServiceCategories: profile.ServiceCategories,
		ServiceLevel:      profile.ServiceLevel,
		ServiceLanguages:  profile.ServiceLanguages,
	}
	selectionChanged := false
	if upd.GalleryImages != nil {
		selection.GalleryImages, selectionChanged = *upd.GalleryImages, true
	}
	if upd.ServiceImages != nil {
		selection.ServiceImages, selectionChanged = *upd.ServiceImages, true
	}
	if upd.ServiceType != nil {
		selection.ServiceType, selectionChanged = *upd.ServiceType, true
	}
	if upd.ServiceCategories != nil {
		selection.ServiceCategories, selectionChanged = *upd.ServiceCategories, true
	}
	if upd.ServiceLevel != nil {
		selection.ServiceLevel, selectionChanged = upd.ServiceLevel, true
	}
	if upd.ServiceLanguages != nil {
		selection.ServiceLanguages, selectionChanged = *upd.ServiceLanguages, true
	}
	selection = normalizeSelection(selection)
	if selectionChanged {
		if err := validateServiceSelection(selection); err != nil {
			return nil, err
		}
		for k, v := range selectionDocument(selection) {
			doc[k] = v
		}
	}

	pricing, pricingChanged, err := applyPricingUpdate(profile, selection, upd)
	if err != nil {
		return nil, err
	}
	if selectionChanged || pricingChanged {
		if profile.SetupCompleted {
			for _, key := range PricingKeys(selection.ServiceType, selection.ServiceCategories) {
				if _, ok := pricing[key]; !ok {
					return nil, utils.NewValidationError("Please enter an hourly rate for " + pricingLabel(key))
				}
			}
		}
		for k, v := range pricingDocument(pricing, selection.ServiceType, selection.ServiceCategories) {
			doc[k] = v
		}
	}

	if len(doc) == 0 && upd.FullName == nil {
		return nil, utils.NewValidationError("No updatable fields provided")
	}
	doc["updated_at"] = time.Now()

	if upd.FullName != nil {
		name := strings.TrimSpace(*upd.FullName)
		if name == "" {
			return nil, utils.NewValidationError("Please enter your full name")
		}
		if err := s.writeNameAndProfile(ctx, userID, name, doc); err != nil {
			return nil, err
		}
	} else if err := s.Workers.UpdateSetDocument(ctx, userID, doc); err != nil {
		utils.GetLogger().Error("worker profile update failed", zap.String("userID", userID), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}
	return s.GetOwnProfile(ctx, userID)
}

func pricingLabel(key string) string {
	if key == models.LegacyPricingKey {
		return "your service"
	}
	return CategoryLabel(key)
}

func applyPersonalUpdate(doc bson.M, upd models.WorkerProfileUpdate) error {
	if upd.Age != nil {
		if err := validateAge(upd.Age); err != nil {
			return err
		}
		doc["age"] = *upd.Age
	}
	if err := validateMeasurements(upd.Height, upd.Weight); err != nil {
		return err
	}
	if upd.Height != nil {
		doc["height"] = *upd.Height
	}
	if upd.Weight != nil {
		doc["weight"] = *upd.Weight
	}
	setTrimmed := func(key string, v *string) {
		if v != nil {
			doc[key] = strings.TrimSpace(*v)
		}
	}
	setTrimmed("zodiac_sign", upd.ZodiacSign)
	setTrimmed("lifestyle", upd.Lifestyle)
	setTrimmed("favorite_quote", upd.FavoriteQuote)
	setTrimmed("introduction", upd.Introduction)
	setTrimmed("bio", upd.Bio)
	if upd.Hobbies != nil {
		doc["hobbies"] = cleanList(*upd.Hobbies)
	}
	if upd.Skills != nil {
		doc["skills"] = cleanList(*upd.Skills)
	}
	if upd.IsAvailable != nil {
		doc["is_available"] = *upd.IsAvailable
	}
	return nil
}

// applyPricingUpdate starts from the stored pricing pruned to the (possibly
// new) selection and applies every submitted hourly rate.
func applyPricingUpdate(profile *models.WorkerProfile, selection models.ServiceSelectionRequest, upd models.WorkerProfileUpdate) (models.ServicePricing, bool, error) {
	pricing := PrunePricing(profile.ServicePricing, selection.ServiceType, selection.ServiceCategories)
	changed := len(pricing) != len(profile.ServicePricing)

	switch selection.ServiceType {
	case models.ServiceTypeAssistance:
		for _, category := range selection.ServiceCategories {
			rate, ok := upd.CategoryRates[category]
			if !ok {
				continue
			}
			if rate <= 0 {
				return nil, false, utils.NewValidationError("Please enter an hourly rate for " + CategoryLabel(category))
			}
			pricing = ApplyHourlyRate(pricing, category, rate)
			changed = true
		}
		for category := range upd.CategoryRates {
			if !containsString(selection.ServiceCategories, category) {
				return nil, false, utils.NewValidationError("Category is not selected: " + category)
			}
		}
	case models.ServiceTypeCompanionship:
		if upd.HourlyRate != nil {
			if *upd.HourlyRate <= 0 {
				return nil, false, utils.NewValidationError("Please enter a valid hourly rate")
			}
			pricing = ApplyHourlyRate(pricing, models.LegacyPricingKey, *upd.HourlyRate)
			changed = true
		}
	}

	if upd.MinBookingHours != nil {
		minHours, err := resolveMinHours(upd.MinBookingHours)
		if err != nil {
			return nil, false, err
		}
		for key, rate := range pricing {
			rate.MinBookingHours = minHours
			pricing[key] = rate
		}
		changed = true
	}
	return pricing, changed, nil
}

func imageField(kind string) (string, int, error) {
	switch kind {
	case ImageKindGallery:
		return "gallery_images", MaxGalleryImages, nil
	case ImageKindService:
		return "service_images", MaxServiceImages, nil
	default:
		return "", 0, utils.NewValidationError("Image kind must be gallery or service")
	}
}

// AddImage appends an uploaded image URL to the gallery or service list.
func (s *DefaultWorkerService) AddImage(ctx context.Context, userID, kind, url string) (*models.WorkerProfile, error) {
	field, limit, err := imageField(kind)
	if err != nil {
		return nil, err
	}
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	current := profile.GalleryImages
	if kind == ImageKindService {
		current = profile.ServiceImages
	}
	if containsString(current, url) {
		return profile, nil
	}
	if len(current) >= limit {
		return nil, utils.NewValidationError("Image limit reached")
	}

	next := append(append([]string{}, current...), url)
	if err := s.Workers.UpdateSetDocument(ctx, userID, bson.M{field: next, "updated_at": time.Now()}); err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	return s.loadOwnProfile(ctx, userID)
}

// RemoveImage drops an image URL. Completed profiles keep the gallery minimum.
func (s *DefaultWorkerService) RemoveImage(ctx context.Context, userID, kind, url string) (*models.WorkerProfile, error) {
	field, _, err := imageField(kind)
	if err != nil {
		return nil, err
	}
	profile, err := s.loadOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	images := profile.GalleryImages
	if kind == ImageKindService {
		images = profile.ServiceImages
	}
	if !containsString(images, url) {
		return nil, utils.NewNotFoundError("Image not found on your profile")
	}
	if kind == ImageKindGallery && profile.SetupCompleted && len(images) <= MinGalleryImages {
		return nil, utils.NewValidationError("A profile needs at least 3 gallery images")
	}
	if err := s.Workers.PullFromArray(ctx, userID, field, url); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Worker profile not found")
		}
		return nil, utils.NewDatabaseError(err)
	}
	return s.loadOwnProfile(ctx, userID)
}

// GetPublicProfile returns a worker only when employers may see it.
func (s *DefaultWorkerService) GetPublicProfile(ctx context.Context, workerID string) (*models.WorkerSummary, error) {
	profile, err := s.publicProfile(ctx, workerID)
	if err != nil {
		return nil, err
	}
	summary, err := s.summarize(ctx, profile)
	if err != nil {
		return nil, err
	}
	summary.Email = ""
	return summary, nil
}

func (s *DefaultWorkerService) publicProfile(ctx context.Context, workerID string) (*models.WorkerProfile, error) {
	profile, err := s.Workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if profile == nil || !profile.IsPubliclyVisible() {
		return nil, utils.NewNotFoundError("Worker not found")
	}
	return profile, nil
}

func (s *DefaultWorkerService) ListPublicWorkers(ctx context.Context, filter models.WorkerFilter) (models.Page[models.WorkerSummary], error) {
	filter.PublicOnly = true
	filter.IDs = nil
	profiles, total, err := s.Workers.Search(ctx, filter)
	if err != nil {
		return models.Page[models.WorkerSummary]{}, utils.NewDatabaseError(err)
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return models.Page[models.WorkerSummary]{}, utils.NewDatabaseError(err)
	}

	items := make([]models.WorkerSummary, 0, len(profiles))
	for _, p := range profiles {
		u := users[p.UserID]
		items = append(items, models.WorkerSummary{WorkerProfile: p, FullName: u.FullName, AvatarURL: u.AvatarURL})
	}
	return models.NewPage(items, total, filter.Pagination), nil
}
