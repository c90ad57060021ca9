// models/employer.go
package models

import "time"

// EmployerProfile is the employer_profiles record. ID equals the owning user's ID.
type EmployerProfile struct {
	ID             string     `bson:"id" json:"id"`
	UserID         string     `bson:"user_id" json:"user_id"`
	CompanyName    string     `bson:"company_name,omitempty" json:"company_name,omitempty"`
	ContactPerson  string     `bson:"contact_person,omitempty" json:"contact_person,omitempty"`
	Location       string     `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string     `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL      string     `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	AccountStatus  string     `bson:"account_status" json:"account_status"`
	SuspendedUntil *time.Time `bson:"suspended_until,omitempty" json:"suspended_until,omitempty"`
	WarningCount   int        `bson:"warning_count" json:"warning_count"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
}

func NewEmployerProfile(userID string) *EmployerProfile {
	now := time.Now()
	return &EmployerProfile{
		ID:            userID,
		UserID:        userID,
		AccountStatus: AccountActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// EmployerProfileUpdate is the body of PUT /api/employers/me/profile.
type EmployerProfileUpdate struct {
	CompanyName   *string `json:"company_name"`
	ContactPerson *string `json:"contact_person"`
	Location      *string `json:"location"`
	Bio           *string `json:"bio"`
	AvatarURL     *string `json:"avatar_url"`
}

// EmployerSummary joins an employer profile with the owning user's identity.
type EmployerSummary struct {
	EmployerProfile `bson:",inline"`
	FullName        string `bson:"full_name" json:"full_name"`
	Email           string `bson:"email" json:"email"`
}
