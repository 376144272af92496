package helpers

import (
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize is the upload limit for images (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// ImageFile describes an upload before it is stored.
type ImageFile struct {
	Name string
	Size int64
	Type string
}

// ValidateImageFile rejects files over MaxFileSize or outside AllowedImageTypes with a 400 AppError.
func ValidateImageFile(f ImageFile) error {
	if f.Size > MaxFileSize {
		return NewAppError("File size must be less than 5MB", http.StatusBadRequest)
	}
	if !slices.Contains(AllowedImageTypes, f.Type) {
		return NewAppError("Only JPEG, PNG, WebP, and GIF images are allowed", http.StatusBadRequest)
	}
	return nil
}

// DetectImageType returns the declared content type when present, otherwise sniffs
// r. r is rewound before returning.
func DetectImageType(declared string, r io.ReadSeeker) (string, error) {
	if ct := strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]); ct != "" && ct != "application/octet-stream" {
		return strings.ToLower(ct), nil
	}
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}
