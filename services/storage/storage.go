package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"hireloop/models"
	"hireloop/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload purposes and the folder each one lands in.
const (
	PurposeAvatar  = "avatar"
	PurposeAdmin   = "admin"
	PurposeGallery = "gallery"
	PurposeService = "service"
)

var purposeFolders = map[string]string{
	PurposeAvatar:  "hireloop/avatars",
	PurposeAdmin:   "hireloop/admin",
	PurposeGallery: "hireloop/gallery",
	PurposeService: "hireloop/service",
}

// ObjectStore persists an object and returns its public location.
type ObjectStore interface {
	Put(ctx context.Context, folder, name string, body io.Reader) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryStore implements ObjectStore on Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cld *cloudinary.Cloudinary) *CloudinaryStore {
	return &CloudinaryStore{cld: cld}
}

func (s *CloudinaryStore) Put(ctx context.Context, folder, name string, body io.Reader) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:       folder,
		PublicID:     name,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", fmt.Errorf("CloudinaryStore: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("CloudinaryStore: upload rejected: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("CloudinaryStore: no public ID returned")
	}
	return result.SecureURL, result.PublicID, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID, ResourceType: "image"})
	if err != nil {
		return fmt.Errorf("CloudinaryStore: failed to delete file: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("CloudinaryStore: delete rejected: %s", result.Error.Message)
	}
	return nil
}

type StorageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, purpose string) (*models.UploadResult, error)
	// DeleteImage removes an image by public ID or delivery URL.
	DeleteImage(ctx context.Context, ref string) error
}

// PublicIDFromURL maps a delivery URL (or a bare public ID) back to the
// public ID of an image this service stored. Anything outside the upload
// folders is refused.
func PublicIDFromURL(ref string) (string, bool) {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Host != "" {
		p = u.Path
	}
	if i := strings.Index(p, "/upload/"); i >= 0 {
		p = p[i+len("/upload/"):]
	}
	p = strings.TrimPrefix(p, "/")
	if seg, rest, ok := strings.Cut(p, "/"); ok && isVersion(seg) {
		p = rest
	}
	p = strings.TrimSuffix(p, path.Ext(p))
	for _, folder := range purposeFolders {
		if name, ok := strings.CutPrefix(p, folder+"/"); ok && name != "" && !strings.Contains(name, "/") {
			return p, true
		}
	}
	return "", false
}

// isVersion matches the v1712345678 segment of a delivery URL.
func isVersion(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DefaultStorageService validates images and hands them to the store.
type DefaultStorageService struct {
	Store ObjectStore
}

func NewStorageService(store ObjectStore) *DefaultStorageService {
	return &DefaultStorageService{Store: store}
}

func (s *DefaultStorageService) UploadImage(ctx context.Context, file *multipart.FileHeader, purpose string) (*models.UploadResult, error) {
	logger := utils.GetLogger()

	if file == nil {
		return nil, utils.NewValidationError("No file provided")
	}
	folder, ok := purposeFolders[purpose]
	if !ok {
		return nil, utils.NewValidationError("Unknown upload purpose: " + purpose)
	}
	if s.Store == nil {
		return nil, &utils.AppError{Code: utils.ErrCodeUnknown, Message: "File storage is not configured"}
	}

	f, err := file.Open()
	if err != nil {
		return nil, utils.NewValidationError("Could not read uploaded file")
	}
	defer f.Close()

	// One byte past the limit is enough to detect oversize bodies whose
	// header lied about the size.
	data, err := io.ReadAll(io.LimitReader(f, utils.MaxUploadSize+1))
	if err != nil {
		return nil, utils.NewValidationError("Could not read uploaded file")
	}
	size := int64(len(data))
	if file.Size > size {
		size = file.Size
	}

	contentType, err := ValidateImage(file.Filename, file.Header.Get("Content-Type"), size, data)
	if err != nil {
		logger.Warn("upload rejected", zap.String("filename", file.Filename), zap.String("purpose", purpose), zap.Error(err))
		return nil, err
	}

	url, publicID, err := s.Store.Put(ctx, folder, uuid.New().String(), bytes.NewReader(data))
	if err != nil {
		logger.Error("Failed to store upload", zap.String("purpose", purpose), zap.Error(err))
		return nil, &utils.AppError{Code: utils.ErrCodeUnknown, Message: "Failed to store file", Err: err}
	}
	logger.Info("image uploaded", zap.String("purpose", purpose), zap.String("publicID", publicID))
	return &models.UploadResult{URL: url, PublicID: publicID, ContentType: contentType, Size: int64(len(data))}, nil
}

func (s *DefaultStorageService) DeleteImage(ctx context.Context, ref string) error {
	if s.Store == nil {
		return &utils.AppError{Code: utils.ErrCodeUnknown, Message: "File storage is not configured"}
	}
	publicID, ok := PublicIDFromURL(ref)
	if !ok {
		return utils.NewValidationError("Not a stored image: " + ref)
	}
	if err := s.Store.Delete(ctx, publicID); err != nil {
		utils.GetLogger().Error("Failed to delete stored image", zap.String("publicID", publicID), zap.Error(err))
		return &utils.AppError{Code: utils.ErrCodeUnknown, Message: "Failed to delete file", Err: err}
	}
	return nil
}
