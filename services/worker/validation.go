package worker

import (
	"fmt"
	"strings"

	"hireloop/models"
	"hireloop/utils"
)

const (
	MinGalleryImages     = 3
	MaxGalleryImages     = 10
	MaxServiceImages     = 5
	MaxServiceCategories = 5
	MinAge               = 1
	MaxAge               = 120
)

var categoryLabels = map[string]string{
	models.CategoryPersonalAssistant: "Personal Assistant",
	models.CategoryTranslator:        "Translator",
	models.CategoryTourGuide:         "Tour Guide",
	models.CategoryEventStaff:        "Event Staff",
	models.CategoryPhotographer:      "Photographer",
}

// CategoryLabel returns the display name of a category tag.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

func validateAge(age *int) error {
	if age == nil {
		return utils.NewValidationError("Please enter your age")
	}
	if *age < MinAge || *age > MaxAge {
		return utils.NewValidationError(fmt.Sprintf("Age must be between %d and %d", MinAge, MaxAge))
	}
	return nil
}

func validateMeasurements(height, weight *float64) error {
	if height != nil && (*height <= 0 || *height > 300) {
		return utils.NewValidationError("Height must be between 0 and 300 cm")
	}
	if weight != nil && (*weight <= 0 || *weight > 500) {
		return utils.NewValidationError("Weight must be between 0 and 500 kg")
	}
	return nil
}

func validatePersonalInfo(req models.PersonalInfoRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return utils.NewValidationError("Please enter your full name")
	}
	if err := validateAge(req.Age); err != nil {
		return err
	}
	return validateMeasurements(req.Height, req.Weight)
}

// normalizeSelection trims and de-duplicates list fields, keeping order.
func normalizeSelection(req models.ServiceSelectionRequest) models.ServiceSelectionRequest {
	req.GalleryImages = cleanList(req.GalleryImages)
	req.ServiceImages = cleanList(req.ServiceImages)
	req.ServiceCategories = cleanList(req.ServiceCategories)
	req.ServiceLanguages = cleanList(req.ServiceLanguages)
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	return req
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func validateServiceSelection(req models.ServiceSelectionRequest) error {
	if len(req.GalleryImages) < MinGalleryImages {
		return utils.NewValidationError(fmt.Sprintf("Please upload at least %d gallery images", MinGalleryImages))
	}
	if len(req.GalleryImages) > MaxGalleryImages {
		return utils.NewValidationError(fmt.Sprintf("You can upload at most %d gallery images", MaxGalleryImages))
	}
	if len(req.ServiceImages) > MaxServiceImages {
		return utils.NewValidationError(fmt.Sprintf("You can upload at most %d service images", MaxServiceImages))
	}

	switch req.ServiceType {
	case "":
		return utils.NewValidationError("Please select a service type")
	case models.ServiceTypeAssistance:
		if len(req.ServiceCategories) == 0 {
			return utils.NewValidationError("Please select at least one service category")
		}
		if len(req.ServiceCategories) > MaxServiceCategories {
			return utils.NewValidationError(fmt.Sprintf("You can select at most %d service categories", MaxServiceCategories))
		}
		for _, c := range req.ServiceCategories {
			if !models.ServiceCategories[c] {
				return utils.NewValidationError("Unknown service category: " + c)
			}
		}
	case models.ServiceTypeCompanionship:
		if req.ServiceLevel == nil {
			return utils.NewValidationError("Please select a service level")
		}
		if *req.ServiceLevel < 1 || *req.ServiceLevel > 3 {
			return utils.NewValidationError("Service level must be between 1 and 3")
		}
	default:
		return utils.NewValidationError("Invalid service type")
	}
	return nil
}

// selectionDocument persists the chosen branch and clears the other one.
// Languages are kept only for translators.
func selectionDocument(req models.ServiceSelectionRequest) map[string]any {
	doc := map[string]any{
		"gallery_images": req.GalleryImages,
		"service_images": req.ServiceImages,
		"service_type":   req.ServiceType,
	}
	if req.ServiceType == models.ServiceTypeAssistance {
		doc["service_categories"] = req.ServiceCategories
		doc["service_level"] = nil
		if containsString(req.ServiceCategories, models.CategoryTranslator) {
			doc["service_languages"] = req.ServiceLanguages
		} else {
			doc["service_languages"] = []string{}
		}
	} else {
		doc["service_categories"] = []string{}
		doc["service_level"] = *req.ServiceLevel
		doc["service_languages"] = []string{}
	}
	return doc
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func resolveMinHours(v *int) (int, error) {
	if v == nil {
		return 1, nil
	}
	if *v < 1 {
		return 0, utils.NewValidationError("Minimum booking hours must be at least 1")
	}
	return *v, nil
}

// buildPricing validates the rates of a pricing submission against the
// persisted selection and returns the full pricing map.
func buildPricing(profile *models.WorkerProfile, req models.PricingRequest) (models.ServicePricing, error) {
	minHours, err := resolveMinHours(req.MinBookingHours)
	if err != nil {
		return nil, err
	}

	pricing := models.ServicePricing{}
	switch profile.ServiceType {
	case models.ServiceTypeAssistance:
		if len(profile.ServiceCategories) == 0 {
			return nil, utils.NewValidationError("Please select at least one service category")
		}
		for _, category := range profile.ServiceCategories {
			rate := req.CategoryRates[category]
			if rate <= 0 {
				return nil, utils.NewValidationError("Please enter an hourly rate for " + CategoryLabel(category))
			}
			pricing[category] = NewServiceRate(rate, minHours)
		}
	case models.ServiceTypeCompanionship:
		if req.HourlyRate <= 0 {
			return nil, utils.NewValidationError("Please enter a valid hourly rate")
		}
		pricing[models.LegacyPricingKey] = NewServiceRate(req.HourlyRate, minHours)
	default:
		return nil, utils.NewValidationError("Please select a service type")
	}
	return pricing, nil
}
