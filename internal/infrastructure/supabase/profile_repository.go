package supabase

import (
	"context"
	"fmt"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/internal/domain/repository"
)

const profilesTable = "profiles"

type ProfileRepository struct {
	db *Client
}

func NewProfileRepository(db *Client) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []entity.Profile
	_, err := r.db.scoped(ctx).From(profilesTable).
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(profilesTable, err)
	}
	return first(profilesTable, rows)
}

func (r *ProfileRepository) Create(ctx context.Context, in entity.ProfileInsert) (*entity.Profile, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []entity.Profile
	_, err := r.db.scoped(ctx).From(profilesTable).
		Insert(in, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(profilesTable, err)
	}
	return first(profilesTable, rows)
}

func (r *ProfileRepository) Update(ctx context.Context, id string, in entity.ProfileUpdate) (*entity.Profile, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []entity.Profile
	_, err := r.db.scoped(ctx).From(profilesTable).
		Update(in, "representation", "").
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(profilesTable, err)
	}
	return first(profilesTable, rows)
}

func first[T any](table string, rows []T) (*T, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", table, repository.ErrNotFound)
	}
	return &rows[0], nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
