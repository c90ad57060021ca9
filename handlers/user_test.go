package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hireloop/models"
	"hireloop/services/worker"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
)

type fakeUserService struct {
	created   []models.CreateUserProfileRequest
	avatarErr error
}

func (f *fakeUserService) CreateUserProfile(ctx context.Context, req models.CreateUserProfileRequest) (*models.User, bool, error) {
	f.created = append(f.created, req)
	return &models.User{ID: req.UserID, Email: req.Email, Role: req.Role}, true, nil
}

func (f *fakeUserService) UserExists(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func (f *fakeUserService) HandleOAuthCallback(ctx context.Context, accessToken, role string) string {
	return "/"
}

func (f *fakeUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return &models.User{ID: userID}, nil
}

func (f *fakeUserService) UpdateFCMToken(ctx context.Context, userID, token string) error { return nil }

func (f *fakeUserService) UpdateAvatar(ctx context.Context, userID, url string) error {
	return f.avatarErr
}

// fakeStorage accepts every upload and records deletions.
type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) UploadImage(ctx context.Context, file *multipart.FileHeader, purpose string) (*models.UploadResult, error) {
	id := "hireloop/" + purpose + "/img1"
	return &models.UploadResult{
		URL:      "https://res.cloudinary.com/demo/image/upload/v1/" + id + ".png",
		PublicID: id,
	}, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	return nil
}

// fakeWorkerImages implements only the image methods of WorkerService.
type fakeWorkerImages struct {
	worker.WorkerService
	err error
}

func (f *fakeWorkerImages) AddImage(ctx context.Context, userID, kind, url string) (*models.WorkerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.WorkerProfile{ID: userID, GalleryImages: []string{url}}, nil
}

func (f *fakeWorkerImages) RemoveImage(ctx context.Context, userID, kind, url string) (*models.WorkerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.WorkerProfile{ID: userID}, nil
}

func withSession(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.CtxUserID, userID)
		c.Next()
	}
}

func uploadRequest(t *testing.T, path string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		w.WriteField(k, v)
	}
	part, err := w.CreateFormFile("file", "me.png")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("\x89PNG\r\n\x1a\n"))
	w.Close()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestCreateUserProfileOwnSessionOnly(t *testing.T) {
	svc := &fakeUserService{}
	h := NewUserHandler(svc, nil)
	r := gin.New()
	r.POST("/anon", h.CreateUserProfileHandler)
	r.POST("/auth", withSession("u1"), h.CreateUserProfileHandler)

	own := `{"userId": "u1", "email": "u1@example.com", "role": "worker"}`
	other := `{"userId": "u2", "email": "u2@example.com", "role": "employer"}`

	if w := do(r, http.MethodPost, "/anon", own); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/auth", other); w.Code != http.StatusForbidden {
		t.Errorf("foreign user id status = %d", w.Code)
	}
	if len(svc.created) != 0 {
		t.Fatalf("service reached for a refused request: %+v", svc.created)
	}
	if w := do(r, http.MethodPost, "/auth", own); w.Code != http.StatusCreated {
		t.Errorf("status = %d body %s", w.Code, w.Body.String())
	}
	if len(svc.created) != 1 || svc.created[0].UserID != "u1" {
		t.Errorf("created = %+v", svc.created)
	}
}

func TestAvatarUploadDiscardsOrphan(t *testing.T) {
	store := &fakeStorage{}
	users := &fakeUserService{avatarErr: utils.NewDatabaseError(errors.New("write conflict"))}
	h := NewUserHandler(users, store)
	r := gin.New()
	r.POST("/api/upload-avatar", withSession("u1"), h.UploadAvatarHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/api/upload-avatar", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "hireloop/avatar/img1" {
		t.Errorf("deleted = %v", store.deleted)
	}

	users.avatarErr = nil
	store.deleted = nil
	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/api/upload-avatar", nil))
	if w.Code != http.StatusOK || len(store.deleted) != 0 {
		t.Errorf("status = %d deleted = %v", w.Code, store.deleted)
	}
}

func TestWorkerImageStorageCleanup(t *testing.T) {
	store := &fakeStorage{}
	svc := &fakeWorkerImages{}
	h := NewWorkerHandler(svc, store)
	r := gin.New()
	r.POST("/api/workers/me/images", withSession("w1"), h.AddImageHandler)
	r.DELETE("/api/workers/me/images", withSession("w1"), h.RemoveImageHandler)

	imageURL := "https://res.cloudinary.com/demo/image/upload/v1/hireloop/gallery/abc.png"
	if w := do(r, http.MethodDelete, "/api/workers/me/images?kind=gallery&url="+imageURL, ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != imageURL {
		t.Errorf("deleted = %v", store.deleted)
	}

	// A refused removal leaves the stored object alone.
	store.deleted = nil
	svc.err = utils.NewNotFoundError("Image not found on your profile")
	if w := do(r, http.MethodDelete, "/api/workers/me/images?kind=gallery&url="+imageURL, ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
	if len(store.deleted) != 0 {
		t.Errorf("deleted = %v", store.deleted)
	}

	// An upload the profile refuses is removed again.
	svc.err = utils.NewValidationError("Image limit reached")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/api/workers/me/images", map[string]string{"kind": "service"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "hireloop/service/img1" {
		t.Errorf("deleted = %v", store.deleted)
	}
}
