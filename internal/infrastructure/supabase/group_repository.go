package supabase

import (
	"context"

	"github.com/supabase-community/postgrest-go"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/internal/domain/repository"
)

const (
	groupsTable       = "groups"
	defaultGroupLimit = 50
)

type GroupRepository struct {
	db *Client
}

func NewGroupRepository(db *Client) *GroupRepository {
	return &GroupRepository{db: db}
}

// List returns groups newest first, filtered by locality and tag when set.
func (r *GroupRepository) List(ctx context.Context, f entity.GroupFilter) ([]entity.Group, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultGroupLimit
	}
	q := r.db.scoped(ctx).From(groupsTable).Select("*", "", false)
	if f.Locality != "" {
		q = q.Eq("locality", f.Locality)
	}
	if f.Tag != "" {
		q = q.Contains("tags", []string{f.Tag})
	}
	rows := []entity.Group{}
	_, err := q.Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(groupsTable, err)
	}
	return rows, nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []entity.Group
	_, err := r.db.scoped(ctx).From(groupsTable).
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(groupsTable, err)
	}
	return first(groupsTable, rows)
}

func (r *GroupRepository) Create(ctx context.Context, in entity.GroupInsert) (*entity.Group, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []entity.Group
	_, err := r.db.scoped(ctx).From(groupsTable).
		Insert(in, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(groupsTable, err)
	}
	return first(groupsTable, rows)
}

var _ repository.GroupRepository = (*GroupRepository)(nil)
