package models

// PersonalInfoRequest is wizard step 1.
type PersonalInfoRequest struct {
	FullName      string   `json:"full_name"`
	Age           *int     `json:"age"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ZodiacSign    string   `json:"zodiac_sign"`
	Hobbies       []string `json:"hobbies"`
	Lifestyle     string   `json:"lifestyle"`
	FavoriteQuote string   `json:"favorite_quote"`
	Introduction  string   `json:"introduction"`
	Skills        []string `json:"skills"`
	Bio           string   `json:"bio"`
	IsAvailable   *bool    `json:"is_available"`
}

// ServiceSelectionRequest is wizard step 2.
type ServiceSelectionRequest struct {
	GalleryImages     []string `json:"gallery_images"`
	ServiceImages     []string `json:"service_images"`
	ServiceType       string   `json:"service_type"`
	ServiceCategories []string `json:"service_categories"`
	ServiceLevel      *int     `json:"service_level"`
	ServiceLanguages  []string `json:"service_languages"`
}

// PricingRequest is wizard step 3. CategoryRates holds the hourly rate of each
// selected assistance category; HourlyRate is the single companionship rate.
type PricingRequest struct {
	CategoryRates   map[string]float64 `json:"category_rates"`
	HourlyRate      float64            `json:"hourly_rate"`
	MinBookingHours *int               `json:"min_booking_hours"`
}

// WizardState tells the client where to resume the wizard.
type WizardState struct {
	CurrentStep    int            `json:"current_step"`
	SetupStep      int            `json:"setup_step"`
	SetupCompleted bool           `json:"setup_completed"`
	Profile        *WorkerProfile `json:"profile,omitempty"`
}

// StepResult is returned after a wizard step persists.
type StepResult struct {
	Profile    *WorkerProfile `json:"profile"`
	NextStep   int            `json:"next_step,omitempty"`
	Completed  bool           `json:"completed"`
	RedirectTo string         `json:"redirect_to,omitempty"`
}

// WorkerProfileUpdate is the body of PATCH /api/workers/me/profile. Nil fields
// are left untouched.
type WorkerProfileUpdate struct {
	FullName      *string   `json:"full_name"`
	Age           *int      `json:"age"`
	Height        *float64  `json:"height"`
	Weight        *float64  `json:"weight"`
	ZodiacSign    *string   `json:"zodiac_sign"`
	Hobbies       *[]string `json:"hobbies"`
	Lifestyle     *string   `json:"lifestyle"`
	FavoriteQuote *string   `json:"favorite_quote"`
	Introduction  *string   `json:"introduction"`
	Skills        *[]string `json:"skills"`
	Bio           *string   `json:"bio"`
	IsAvailable   *bool     `json:"is_available"`

	GalleryImages     *[]string `json:"gallery_images"`
	ServiceImages     *[]string `json:"service_images"`
	ServiceType       *string   `json:"service_type"`
	ServiceCategories *[]string `json:"service_categories"`
	ServiceLevel      *int      `json:"service_level"`
	ServiceLanguages  *[]string `json:"service_languages"`

	CategoryRates   map[string]float64 `json:"category_rates"`
	HourlyRate      *float64           `json:"hourly_rate"`
	MinBookingHours *int               `json:"min_booking_hours"`
}

// WorkerFilter narrows worker listings.
type WorkerFilter struct {
	ApprovalStatus string `form:"approval_status"`
	AccountStatus  string `form:"account_status"`
	ServiceType    string `form:"service_type"`
	Category       string `form:"category"`
	Level          int    `form:"level"`
	Language       string `form:"language"`
	Available      *bool  `form:"available"`
	Search         string `form:"search"`
	Pagination

	// Set by services, never bound from the query string.
	IDs        []string `form:"-"`
	PublicOnly bool     `form:"-"`
}

// EmployerFilter narrows employer listings.
type EmployerFilter struct {
	AccountStatus string `form:"account_status"`
	Search        string `form:"search"`
	Pagination

	IDs []string `form:"-"`
}

// ActionFilter narrows the audit log.
type ActionFilter struct {
	TargetType string `form:"target_type"`
	TargetID   string `form:"target_id"`
	ActionType string `form:"action_type"`
	AdminID    string `form:"admin_id"`
	Pagination
}

// ReportFilter narrows the report queue.
type ReportFilter struct {
	Status     string `form:"status"`
	TargetType string `form:"target_type"`
	Pagination
}
