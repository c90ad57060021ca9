package user

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

// CreateUserProfile creates the user record or refreshes it, then makes sure
// the role's profile row exists. It reports whether the user was new.
func (s *DefaultUserService) CreateUserProfile(ctx context.Context, req models.CreateUserProfileRequest) (*models.User, bool, error) {
	logger := utils.GetLogger()

	req.UserID = strings.TrimSpace(req.UserID)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.UserID == "" || req.Email == "" {
		return nil, false, utils.NewValidationError("userId and email are required")
	}
	if !models.IsValidSignupRole(req.Role) {
		return nil, false, utils.NewValidationError("role must be worker or employer")
	}
	if req.PreferredLanguage != "" && !models.SupportedLanguages[req.PreferredLanguage] {
		return nil, false, utils.NewValidationError("Unsupported preferred_language: " + req.PreferredLanguage)
	}

	existing, err := s.Repo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, false, utils.NewDatabaseError(err)
	}
	if existing != nil && existing.Role != req.Role {
		return nil, false, utils.NewConflictError("User already registered as " + existing.Role)
	}

	u := &models.User{
		ID:                req.UserID,
		Email:             req.Email,
		Role:              req.Role,
		Phone:             strings.TrimSpace(req.Phone),
		PreferredLanguage: req.PreferredLanguage,
	}
	created, err := s.Repo.Upsert(ctx, u)
	if errors.Is(err, database.ErrDuplicateKey) {
		logger.Warn("email already registered", zap.String("userID", req.UserID))
		return nil, false, utils.NewConflictError("Email is already registered to another account")
	}
	if err != nil {
		logger.Error("Failed to upsert user", zap.String("userID", req.UserID), zap.Error(err))
		return nil, false, utils.NewDatabaseError(err)
	}

	if err := s.ensureRoleProfile(ctx, req.UserID, req.Role); err != nil {
		return nil, false, err
	}

	stored, err := s.Repo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, false, utils.NewDatabaseError(err)
	}
	if stored == nil {
		return nil, false, utils.NewUserNotFoundError(req.UserID)
	}
	logger.Info("user profile saved", zap.String("userID", req.UserID), zap.String("role", req.Role), zap.Bool("created", created))
	return stored, created, nil
}

// ensureRoleProfile creates the empty worker/employer row when absent.
func (s *DefaultUserService) ensureRoleProfile(ctx context.Context, userID, role string) error {
	var (
		inserted bool
		err      error
	)
	switch role {
	case models.RoleWorker:
		inserted, err = s.Workers.EnsureExists(ctx, models.NewWorkerProfile(userID))
	case models.RoleEmployer:
		inserted, err = s.Employers.EnsureExists(ctx, models.NewEmployerProfile(userID))
	default:
		return nil
	}
	if err != nil {
		utils.GetLogger().Error("Failed to create role profile", zap.String("userID", userID), zap.String("role", role), zap.Error(err))
		return utils.NewDatabaseError(err)
	}
	if inserted {
		utils.GetLogger().Debug("role profile created", zap.String("userID", userID), zap.String("role", role))
	}
	return nil
}

func (s *DefaultUserService) UserExists(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, utils.NewValidationError("userId is required")
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return false, utils.NewDatabaseError(err)
	}
	return u != nil, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if u == nil {
		return nil, utils.NewUserNotFoundError(userID)
	}
	return u, nil
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	if strings.TrimSpace(token) == "" {
		return utils.NewValidationError("FCM token is required")
	}
	return s.setUserFields(ctx, userID, bson.M{"fcm_token": token})
}

func (s *DefaultUserService) UpdateAvatar(ctx context.Context, userID, url string) error {
	return s.setUserFields(ctx, userID, bson.M{"avatar_url": url})
}

func (s *DefaultUserService) setUserFields(ctx context.Context, userID string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	if err := s.Repo.UpdateSetDocument(ctx, userID, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewUserNotFoundError(userID)
		}
		return utils.NewDatabaseError(err)
	}
	return nil
}
