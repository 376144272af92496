package application

import (
	"errors"
	"net/http"
	"strings"

	"github.com/oksasatya/famjamjam/internal/domain/repository"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileExists       = errors.New("profile already exists")
	ErrGroupNotFound       = errors.New("group not found")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidMaxAttendees = errors.New("max_attendees must be greater than zero")
	ErrNothingToUpdate     = errors.New("nothing to update")
	ErrUnreadableUpload    = errors.New("could not read upload")
)

var statusBySentinel = []struct {
	err    error
	status int
}{
	{ErrProfileNotFound, http.StatusNotFound},
	{ErrGroupNotFound, http.StatusNotFound},
	{repository.ErrNotFound, http.StatusNotFound},
	{ErrProfileExists, http.StatusConflict},
	{repository.ErrConflict, http.StatusConflict},
	{ErrInvalidEmail, http.StatusBadRequest},
	{ErrInvalidMaxAttendees, http.StatusBadRequest},
	{ErrNothingToUpdate, http.StatusBadRequest},
	{ErrUnreadableUpload, http.StatusBadRequest},
	{helpers.ErrUploadNotConfigured, http.StatusServiceUnavailable},
	{ErrSearchUnavailable, http.StatusServiceUnavailable},
}

// AsAppError translates service errors into an AppError for the HTTP edge.
// AppErrors pass through untouched; unknown errors stay 500.
func AsAppError(err error) error {
	if err == nil {
		return nil
	}
	var ae *helpers.AppError
	if errors.As(err, &ae) {
		return err
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return helpers.WrapAppError(err, capitalize(s.err.Error()), s.status)
		}
	}
	return helpers.WrapAppError(err, "internal server error", http.StatusInternalServerError)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
