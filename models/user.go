// models/user.go
package models

import "time"

const (
	RoleWorker   = "worker"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

// User is the base account record linked to the identity provider's user id.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Email             string    `bson:"email" json:"email"`
	FullName          string    `bson:"full_name" json:"full_name,omitempty"`
	Role              string    `bson:"role" json:"role"`
	Phone             string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PreferredLanguage string    `bson:"preferred_language" json:"preferred_language"`
	AvatarURL         string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	FCMToken          string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateUserProfileRequest is the payload of POST /api/auth/create-user-profile.
type CreateUserProfileRequest struct {
	UserID            string `json:"userId" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Role              string `json:"role" binding:"required,oneof=worker employer"`
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferred_language"`
}

// IsValidSignupRole reports whether role can be chosen at registration.
func IsValidSignupRole(role string) bool {
	return role == RoleWorker || role == RoleEmployer
}

// SupportedLanguages lists the interface languages a user can prefer.
var SupportedLanguages = map[string]bool{
	"en": true,
	"th": true,
	"zh": true,
	"ja": true,
}

const DefaultLanguage = "en"
