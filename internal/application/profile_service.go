package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	repo "github.com/oksasatya/famjamjam/internal/domain/repository"
	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/mailer"
)

const avatarPrefix = "avatars"

// ProfileService writes through Repo. Get reads through Reader, which may be a
// handle acting as the signed-in user; it defaults to Repo.
type ProfileService struct {
	Repo      repo.ProfileRepository
	Reader    ProfileReader
	Uploader  Uploader
	Publisher Publisher
	Logger    *logrus.Logger
}

func NewProfileService(r repo.ProfileRepository, uploader Uploader, pub Publisher, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Repo: r, Reader: r, Uploader: uploader, Publisher: pub, Logger: logger}
}

// ProfileView is a profile plus the presentation fields derived from it.
type ProfileView struct {
	entity.Profile
	AvatarColor string `json:"avatar_color"`
	Initials    string `json:"initials"`
}

func newProfileView(p *entity.Profile) *ProfileView {
	return &ProfileView{
		Profile:     *p,
		AvatarColor: helpers.GetAvatarColor(p.FamilyName),
		Initials:    helpers.GetInitials(p.FamilyName),
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*ProfileView, error) {
	reader := s.Reader
	if reader == nil {
		reader = s.Repo
	}
	p, err := reader.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return newProfileView(p), nil
}

type CreateProfileInput struct {
	FamilyName   string
	Email        string
	Bio          *string
	Interests    []string
	Neighborhood *string
	City         *string
}

// Create inserts the caller's profile and queues a welcome mail.
func (s *ProfileService) Create(ctx context.Context, userID string, in CreateProfileInput) (*ProfileView, error) {
	email := strings.TrimSpace(in.Email)
	if !helpers.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	row := entity.ProfileInsert{
		ID:           userID,
		FamilyName:   strings.TrimSpace(in.FamilyName),
		Email:        email,
		Bio:          in.Bio,
		Neighborhood: in.Neighborhood,
		City:         in.City,
	}
	if len(in.Interests) > 0 {
		row.Interests = helpers.Unique(in.Interests)
	}
	p, err := s.Repo.Create(ctx, row)
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	s.publish(ctx, mailer.NotificationJob{
		Type:       mailer.TypeWelcome,
		To:         p.Email,
		FamilyName: p.FamilyName,
		QueuedAt:   time.Now().UTC(),
	})
	return newProfileView(p), nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, upd entity.ProfileUpdate) (*ProfileView, error) {
	if upd.Empty() {
		return nil, ErrNothingToUpdate
	}
	if upd.Interests != nil {
		upd.Interests = helpers.Unique(upd.Interests)
	}
	p, err := s.Repo.Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return newProfileView(p), nil
}

// AvatarUpload is a multipart file as received by the handler.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// UploadAvatar validates and stores an avatar image, then points the profile at it.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID string, f AvatarUpload) (*ProfileView, error) {
	if _, err := s.Repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	ct, err := helpers.DetectImageType(f.ContentType, f.Body)
	if err != nil {
		return nil, ErrUnreadableUpload
	}
	if err := helpers.ValidateImageFile(helpers.ImageFile{Name: f.Filename, Size: f.Size, Type: ct}); err != nil {
		return nil, err
	}
	if s.Uploader == nil {
		return nil, helpers.ErrUploadNotConfigured
	}
	url, err := s.Uploader.Upload(ctx, helpers.ObjectPath(avatarPrefix, userID, f.Filename, ct), ct, f.Body)
	if err != nil {
		helpers.LogError(s.Logger, "avatar upload failed", err, logrus.Fields{"user_id": userID})
		return nil, err
	}
	return s.Update(ctx, userID, entity.ProfileUpdate{AvatarURL: &url})
}

func (s *ProfileService) publish(ctx context.Context, job mailer.NotificationJob) {
	publishJob(ctx, s.Publisher, s.Logger, job)
}

// publishJob queues job best effort; failures are logged and counted only.
func publishJob(ctx context.Context, pub Publisher, logger *logrus.Logger, job mailer.NotificationJob) {
	if pub == nil {
		return
	}
	if err := pub.PublishJSON(ctx, job); err != nil {
		notificationsFailed.Add(1)
		helpers.LogWarn(logger, "queue notification failed", err, logrus.Fields{"type": job.Type, "to": job.To})
		return
	}
	notificationsQueued.Add(1)
}
