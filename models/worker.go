// models/worker.go
package models

import "time"

const (
	ServiceTypeAssistance    = "assistance"
	ServiceTypeCompanionship = "companionship"
)

// Fixed assistance categories a worker may offer.
const (
	CategoryPersonalAssistant = "personal_assistant"
	CategoryTranslator        = "translator"
	CategoryTourGuide         = "tour_guide"
	CategoryEventStaff        = "event_staff"
	CategoryPhotographer      = "photographer"
)

var ServiceCategories = map[string]bool{
	CategoryPersonalAssistant: true,
	CategoryTranslator:        true,
	CategoryTourGuide:         true,
	CategoryEventStaff:        true,
	CategoryPhotographer:      true,
}

// LegacyPricingKey keys the single flat rate used by companionship workers.
const LegacyPricingKey = "legacy"

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const (
	AccountActive    = "active"
	AccountSuspended = "suspended"
	AccountBanned    = "banned"
)

// ServiceRate is the pricing record of one service category.
// DailyRate and MonthlyRate are always derived from HourlyRate.
type ServiceRate struct {
	HourlyRate      float64 `bson:"hourly_rate" json:"hourly_rate"`
	DailyRate       float64 `bson:"daily_rate" json:"daily_rate"`
	MonthlyRate     float64 `bson:"monthly_rate" json:"monthly_rate"`
	MinBookingHours int     `bson:"min_booking_hours" json:"min_booking_hours"`
}

// ServicePricing maps a service category (or LegacyPricingKey) to its rates.
type ServicePricing map[string]ServiceRate

// WorkerProfile is the worker_profiles record. ID equals the owning user's ID.
type WorkerProfile struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"user_id" json:"user_id"`

	// Personal info (wizard step 1).
	Age           *int     `bson:"age,omitempty" json:"age,omitempty"`
	Height        *float64 `bson:"height,omitempty" json:"height,omitempty"`
	Weight        *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	ZodiacSign    string   `bson:"zodiac_sign,omitempty" json:"zodiac_sign,omitempty"`
	Hobbies       []string `bson:"hobbies,omitempty" json:"hobbies,omitempty"`
	Lifestyle     string   `bson:"lifestyle,omitempty" json:"lifestyle,omitempty"`
	FavoriteQuote string   `bson:"favorite_quote,omitempty" json:"favorite_quote,omitempty"`
	Introduction  string   `bson:"introduction,omitempty" json:"introduction,omitempty"`
	Skills        []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Bio           string   `bson:"bio,omitempty" json:"bio,omitempty"`
	IsAvailable   bool     `bson:"is_available" json:"is_available"`

	// Service & gallery (wizard step 2).
	GalleryImages     []string `bson:"gallery_images" json:"gallery_images"`
	ServiceImages     []string `bson:"service_images" json:"service_images"`
	ServiceType       string   `bson:"service_type,omitempty" json:"service_type,omitempty"`
	ServiceCategories []string `bson:"service_categories" json:"service_categories"`
	ServiceLevel      *int     `bson:"service_level" json:"service_level"`
	ServiceLanguages  []string `bson:"service_languages" json:"service_languages"`

	// Pricing (wizard step 3). The flat columns mirror one entry of ServicePricing.
	ServicePricing  ServicePricing `bson:"service_pricing,omitempty" json:"service_pricing,omitempty"`
	HourlyRate      float64        `bson:"hourly_rate" json:"hourly_rate"`
	DailyRate       float64        `bson:"daily_rate" json:"daily_rate"`
	MonthlyRate     float64        `bson:"monthly_rate" json:"monthly_rate"`
	MinBookingHours int            `bson:"min_booking_hours" json:"min_booking_hours"`

	SetupStep      int  `bson:"setup_step" json:"setup_step"`
	SetupCompleted bool `bson:"setup_completed" json:"setup_completed"`

	// Moderation.
	ApprovalStatus  string     `bson:"approval_status" json:"approval_status"`
	ApprovedAt      *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	RejectionReason string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	AccountStatus   string     `bson:"account_status" json:"account_status"`
	SuspendedUntil  *time.Time `bson:"suspended_until,omitempty" json:"suspended_until,omitempty"`
	WarningCount    int        `bson:"warning_count" json:"warning_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewWorkerProfile returns the row created for a freshly registered worker.
func NewWorkerProfile(userID string) *WorkerProfile {
	now := time.Now()
	return &WorkerProfile{
		ID:                userID,
		UserID:            userID,
		GalleryImages:     []string{},
		ServiceImages:     []string{},
		ServiceCategories: []string{},
		ServiceLanguages:  []string{},
		MinBookingHours:   1,
		SetupStep:         1,
		ApprovalStatus:    ApprovalPending,
		AccountStatus:     AccountActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsPubliclyVisible reports whether the profile can be shown to employers.
func (w *WorkerProfile) IsPubliclyVisible() bool {
	return w.SetupCompleted && w.ApprovalStatus == ApprovalApproved && w.AccountStatus == AccountActive
}

// WorkerSummary joins a worker profile with the owning user's identity fields.
type WorkerSummary struct {
	WorkerProfile `bson:",inline"`
	FullName      string `bson:"full_name" json:"full_name"`
	Email         string `bson:"email" json:"email"`
	AvatarURL     string `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}
