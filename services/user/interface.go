package user

import (
	"context"

	employerRepo "hireloop/database/repository/employer"
	userRepo "hireloop/database/repository/user"
	workerRepo "hireloop/database/repository/worker"
	"hireloop/models"
	"hireloop/utils"
)

type UserService interface {
	// Registration
	CreateUserProfile(ctx context.Context, req models.CreateUserProfileRequest) (*models.User, bool, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	HandleOAuthCallback(ctx context.Context, accessToken, role string) string

	// User Management
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
	UpdateAvatar(ctx context.Context, userID, url string) error
}

// TokenParser validates an identity token and returns its claims.
type TokenParser func(token string) (*utils.SessionClaims, error)

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Workers   workerRepo.WorkerRepository
	Employers employerRepo.EmployerRepository
	// ParseToken defaults to utils.ParseSessionToken.
	ParseToken TokenParser
	// SiteURL prefixes every redirect target.
	SiteURL string
}
