package storage

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"hireloop/utils"

	"github.com/gabriel-vasile/mimetype"
)

// allowedImages maps each accepted extension to its canonical MIME type.
var allowedImages = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// normalizeMIME strips parameters and folds the image/jpg alias.
func normalizeMIME(v string) string {
	if parsed, _, err := mime.ParseMediaType(v); err == nil {
		v = parsed
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "image/jpg" || v == "image/pjpeg" {
		return "image/jpeg"
	}
	return v
}

// ValidateImage checks that the file name, the declared Content-Type and the
// sniffed content all describe the same whitelisted image type. It returns
// the canonical MIME type.
func ValidateImage(filename, declared string, size int64, head []byte) (string, error) {
	if size <= 0 {
		return "", utils.NewValidationError("File is empty")
	}
	if size > utils.MaxUploadSize {
		return "", utils.NewValidationError(fmt.Sprintf("File exceeds the %dMB limit", utils.MaxUploadSize>>20))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	expected, ok := allowedImages[ext]
	if !ok {
		return "", utils.NewValidationError("Only jpg, jpeg, png, gif and webp images are allowed")
	}
	if declared != "" && normalizeMIME(declared) != expected {
		return "", utils.NewValidationError("Content-Type does not match the file extension")
	}

	detected := normalizeMIME(mimetype.Detect(head).String())
	if detected != expected {
		return "", utils.NewValidationError("File content does not match its extension")
	}
	return expected, nil
}
