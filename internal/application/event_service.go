package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	repo "github.com/oksasatya/famjamjam/internal/domain/repository"
	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/mailer"
)

const eventDateFormat = "EEE, MMM d 'at' h:mm a"

type EventService struct {
	Reader    repo.EventRepository
	Writer    repo.EventRepository
	Groups    repo.GroupRepository
	Profiles  repo.ProfileRepository
	Prefs     *PreferencesService
	Publisher Publisher
	Logger    *logrus.Logger
}

func NewEventService(reader, writer repo.EventRepository, groups repo.GroupRepository, profiles repo.ProfileRepository, prefs *PreferencesService, pub Publisher, logger *logrus.Logger) *EventService {
	return &EventService{
		Reader:    reader,
		Writer:    writer,
		Groups:    groups,
		Profiles:  profiles,
		Prefs:     prefs,
		Publisher: pub,
		Logger:    logger,
	}
}

// EventView carries the labels the listing page shows next to each event.
type EventView struct {
	entity.Event
	DateLabel     string `json:"date_label"`
	RelativeLabel string `json:"relative_label"`
	DistanceLabel string `json:"distance_label"`
}

func newEventView(e entity.Event) EventView {
	return EventView{
		Event:         e,
		DateLabel:     helpers.FormatDate(e.EventDate, eventDateFormat),
		RelativeLabel: helpers.FormatDateRelative(e.EventDate),
		DistanceLabel: helpers.FormatDateDistance(e.EventDate),
	}
}

func (s *EventService) group(ctx context.Context, id string) (*entity.Group, error) {
	g, err := s.Groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *EventService) ListForGroup(ctx context.Context, groupID string, limit int) ([]EventView, error) {
	if _, err := s.group(ctx, groupID); err != nil {
		return nil, err
	}
	events, err := s.Reader.ListByGroup(ctx, groupID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, newEventView(e))
	}
	return out, nil
}

type CreateEventInput struct {
	Title        string
	Description  string
	EventDate    time.Time
	Location     string
	Address      *string
	MaxAttendees *int
	ImageURL     *string
}

// Create adds an event to an existing group and notifies its creator.
func (s *EventService) Create(ctx context.Context, userID, groupID string, in CreateEventInput) (*EventView, error) {
	if in.MaxAttendees != nil && *in.MaxAttendees <= 0 {
		return nil, ErrInvalidMaxAttendees
	}
	g, err := s.group(ctx, groupID)
	if err != nil {
		return nil, err
	}
	ev, err := s.Writer.Create(ctx, entity.EventInsert{
		GroupID:      g.ID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		EventDate:    in.EventDate,
		Location:     strings.TrimSpace(in.Location),
		Address:      in.Address,
		MaxAttendees: in.MaxAttendees,
		ImageURL:     in.ImageURL,
		CreatedBy:    &userID,
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, userID, g, ev)
	v := newEventView(*ev)
	return &v, nil
}

func (s *EventService) notify(ctx context.Context, userID string, g *entity.Group, ev *entity.Event) {
	if s.Publisher == nil || s.Profiles == nil {
		return
	}
	if s.Prefs != nil && !s.Prefs.Get(ctx, userID).EmailNotifications {
		return
	}
	p, err := s.Profiles.GetByID(ctx, userID)
	if err != nil {
		helpers.LogWarn(s.Logger, "notification skipped, profile lookup failed", err, logrus.Fields{"user_id": userID})
		return
	}
	publishJob(ctx, s.Publisher, s.Logger, mailer.NotificationJob{
		Type:       mailer.TypeNewEvent,
		To:         p.Email,
		FamilyName: p.FamilyName,
		Event: &mailer.EventNotification{
			EventID:      ev.ID,
			GroupID:      g.ID,
			GroupTitle:   g.Title,
			Title:        ev.Title,
			Description:  ev.Description,
			Location:     ev.Location,
			EventDate:    ev.EventDate,
			MaxAttendees: ev.MaxAttendees,
		},
		QueuedAt: time.Now().UTC(),
	})
}
