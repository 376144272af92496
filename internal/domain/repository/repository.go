package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a unique or foreign key constraint.
	ErrConflict = errors.New("conflict")
)

// ProfileRepository defines the profile operations against the row store.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	Create(ctx context.Context, in entity.ProfileInsert) (*entity.Profile, error)
	Update(ctx context.Context, id string, in entity.ProfileUpdate) (*entity.Profile, error)
}

type GroupRepository interface {
	List(ctx context.Context, f entity.GroupFilter) ([]entity.Group, error)
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	Create(ctx context.Context, in entity.GroupInsert) (*entity.Group, error)
}

type EventRepository interface {
	ListByGroup(ctx context.Context, groupID string, limit int) ([]entity.Event, error)
	Create(ctx context.Context, in entity.EventInsert) (*entity.Event, error)
}
