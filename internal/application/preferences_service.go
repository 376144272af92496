package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/pkg/helpers"
)

const preferencesKeyPrefix = "prefs:"

// Preferences are per-user settings kept outside the row store.
type Preferences struct {
	Neighborhood       string   `json:"neighborhood,omitempty"`
	Interests          []string `json:"interests"`
	EmailNotifications bool     `json:"email_notifications"`
}

func DefaultPreferences() Preferences {
	return Preferences{Interests: []string{}, EmailNotifications: true}
}

type PreferencesService struct {
	Store  helpers.Storage
	Logger *logrus.Logger
}

func NewPreferencesService(store helpers.Storage, logger *logrus.Logger) *PreferencesService {
	if store == nil {
		store = helpers.NopStorage{}
	}
	return &PreferencesService{Store: store, Logger: logger}
}

func preferencesKey(userID string) string {
	return preferencesKeyPrefix + userID
}

// Get never fails: a missing or unreadable entry yields the defaults.
func (s *PreferencesService) Get(ctx context.Context, userID string) Preferences {
	p, ok := helpers.GetJSON[Preferences](ctx, s.Store, preferencesKey(userID))
	if !ok {
		return DefaultPreferences()
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return p
}

func (s *PreferencesService) Save(ctx context.Context, userID string, p Preferences) (Preferences, error) {
	p.Neighborhood = strings.TrimSpace(p.Neighborhood)
	if p.Interests == nil {
		p.Interests = []string{}
	}
	p.Interests = helpers.Unique(p.Interests)
	if err := s.Store.Set(ctx, preferencesKey(userID), p); err != nil {
		preferencesWriteFails.Add(1)
		helpers.LogWarn(s.Logger, "save preferences failed", err, logrus.Fields{"user_id": userID})
		return Preferences{}, err
	}
	return p, nil
}

func (s *PreferencesService) Reset(ctx context.Context, userID string) error {
	if err := s.Store.Remove(ctx, preferencesKey(userID)); err != nil {
		preferencesWriteFails.Add(1)
		helpers.LogWarn(s.Logger, "reset preferences failed", err, logrus.Fields{"user_id": userID})
		return err
	}
	return nil
}
