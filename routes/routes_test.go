package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hireloop/config"
	"hireloop/handlers"
	"hireloop/models"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
)

type registrations struct {
	users []string
}

func (r *registrations) CreateUserProfile(ctx context.Context, req models.CreateUserProfileRequest) (*models.User, bool, error) {
	r.users = append(r.users, req.UserID)
	return &models.User{ID: req.UserID, Role: req.Role}, true, nil
}

func (r *registrations) UserExists(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func (r *registrations) HandleOAuthCallback(ctx context.Context, accessToken, role string) string {
	return "/"
}

func (r *registrations) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}

func (r *registrations) UpdateFCMToken(ctx context.Context, userID, token string) error { return nil }

func (r *registrations) UpdateAvatar(ctx context.Context, userID, url string) error { return nil }

func TestCreateUserProfileRouteNeedsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "routes-test"

	svc := &registrations{}
	r := gin.New()
	RegisterAuthRoutes(r, &handlers.HandlerBundle{User: handlers.NewUserHandler(svc, nil)})

	post := func(token, body string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/create-user-profile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	victim := `{"userId": "victim", "email": "victim@example.com", "role": "employer"}`
	if code := post("", victim); code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", code)
	}

	token, err := utils.GenerateToken("attacker", "attacker@example.com", "", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if code := post(token, victim); code != http.StatusForbidden {
		t.Errorf("foreign user id status = %d", code)
	}
	if len(svc.users) != 0 {
		t.Fatalf("registered %v", svc.users)
	}

	if code := post(token, `{"userId": "attacker", "email": "attacker@example.com", "role": "worker"}`); code != http.StatusCreated {
		t.Errorf("own registration status = %d", code)
	}
}
