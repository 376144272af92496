package supabase

import (
	"context"

	"github.com/supabase-community/postgrest-go"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/internal/domain/repository"
)

const (
	eventsTable       = "events"
	defaultEventLimit = 100
)

type EventRepository struct {
	db *Client
}

func NewEventRepository(db *Client) *EventRepository {
	return &EventRepository{db: db}
}

// ListByGroup returns a group's events in date order.
func (r *EventRepository) ListByGroup(ctx context.Context, groupID string, limit int) ([]entity.Event, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultEventLimit
	}
	rows := []entity.Event{}
	_, err := r.db.scoped(ctx).From(eventsTable).
		Select("*", "", false).
		Eq("group_id", groupID).
		Order("event_date", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(eventsTable, err)
	}
	return rows, nil
}

func (r *EventRepository) Create(ctx context.Context, in entity.EventInsert) (*entity.Event, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []entity.Event
	_, err := r.db.scoped(ctx).From(eventsTable).
		Insert(in, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(eventsTable, err)
	}
	return first(eventsTable, rows)
}

var _ repository.EventRepository = (*EventRepository)(nil)
