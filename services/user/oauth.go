package user

import (
	"context"
	"net/url"

	"hireloop/models"
	"hireloop/utils"

	"go.uber.org/zap"
)

// Redirect targets of the OAuth callback.
const (
	LoginPath            = "/login"
	RegisterPath         = "/register"
	WorkerOnboardingPath = "/worker/onboarding"
	WorkerProfilePath    = "/worker/profile/edit"
	EmployerProfilePath  = "/employer/profile/edit"
	EmployerHomePath     = "/employer/dashboard"
	AdminHomePath        = "/admin"
)

// HandleOAuthCallback resolves where the browser goes after the identity
// provider redirects back. A new user without a valid role is sent back to
// registration; a role is never assumed.
func (s *DefaultUserService) HandleOAuthCallback(ctx context.Context, accessToken, role string) string {
	logger := utils.GetLogger()

	if accessToken == "" {
		return s.redirect(LoginPath, "missing_token")
	}
	parse := s.ParseToken
	if parse == nil {
		parse = utils.ParseSessionToken
	}
	claims, err := parse(accessToken)
	if err != nil {
		logger.Warn("oauth callback: invalid token", zap.Error(err))
		return s.redirect(LoginPath, "invalid_token")
	}

	existing, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Error("oauth callback: user lookup failed", zap.String("userID", claims.UserID), zap.Error(err))
		return s.redirect(LoginPath, "server_error")
	}
	if existing != nil {
		return s.landingFor(ctx, existing)
	}

	if !models.IsValidSignupRole(role) {
		return s.redirect(RegisterPath, "missing_role")
	}
	if claims.Email == "" {
		return s.redirect(RegisterPath, "missing_email")
	}

	_, _, err = s.CreateUserProfile(ctx, models.CreateUserProfileRequest{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	})
	if utils.IsCode(err, utils.ErrCodeConflict) {
		return s.redirect(LoginPath, "email_in_use")
	}
	if err != nil {
		logger.Error("oauth callback: profile creation failed", zap.String("userID", claims.UserID), zap.Error(err))
		return s.redirect(RegisterPath, "profile_creation_failed")
	}
	if role == models.RoleWorker {
		return s.redirect(WorkerOnboardingPath, "")
	}
	return s.redirect(EmployerProfilePath, "")
}

func (s *DefaultUserService) landingFor(ctx context.Context, u *models.User) string {
	switch u.Role {
	case models.RoleAdmin:
		return s.redirect(AdminHomePath, "")
	case models.RoleEmployer:
		return s.redirect(EmployerHomePath, "")
	case models.RoleWorker:
		profile, err := s.Workers.GetByID(ctx, u.ID)
		if err == nil && profile != nil && profile.SetupCompleted {
			return s.redirect(WorkerProfilePath, "")
		}
		return s.redirect(WorkerOnboardingPath, "")
	default:
		return s.redirect(RegisterPath, "missing_role")
	}
}

func (s *DefaultUserService) redirect(path, errCode string) string {
	target := s.SiteURL + path
	if errCode != "" {
		target += "?error=" + url.QueryEscape(errCode)
	}
	return target
}
