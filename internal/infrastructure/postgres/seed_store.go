package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// seedBatchSize bounds the statements queued in one pgx batch.
const seedBatchSize = 50

// SeedStore writes fixture rows straight into Postgres, bypassing the REST
// layer and its row level security.
type SeedStore struct {
	pool *pgxpool.Pool
}

func NewSeedStore(pool *pgxpool.Pool) *SeedStore {
	return &SeedStore{pool: pool}
}

const upsertProfileSQL = `
	INSERT INTO profiles (id, family_name, email, bio, interests, neighborhood, city)
	VALUES ($1, $2, $3, $4, COALESCE($5, '{}'::text[]), $6, COALESCE($7, 'Bangalore'))
	ON CONFLICT (id) DO UPDATE SET
		family_name = EXCLUDED.family_name,
		bio = EXCLUDED.bio,
		interests = EXCLUDED.interests,
		neighborhood = EXCLUDED.neighborhood,
		updated_at = now()
`

func (s *SeedStore) UpsertProfile(ctx context.Context, p entity.ProfileInsert) error {
	_, err := s.pool.Exec(ctx, upsertProfileSQL, p.ID, p.FamilyName, p.Email, p.Bio, p.Interests, p.Neighborhood, p.City)
	return err
}

const insertGroupSQL = `
	INSERT INTO groups (title, description, locality, tags, rules, image_url, created_by)
	VALUES ($1, $2, $3, COALESCE($4, '{}'::text[]), $5, $6, $7)
	ON CONFLICT (title, locality) DO UPDATE SET
		description = EXCLUDED.description,
		tags = EXCLUDED.tags,
		updated_at = now()
	RETURNING id, title, description, locality, tags, rules, image_url, is_verified, member_count, created_by, created_at, updated_at
`

// UpsertGroups inserts groups in batches and returns the stored rows in input order.
func (s *SeedStore) UpsertGroups(ctx context.Context, groups []entity.GroupInsert) ([]entity.Group, error) {
	out := make([]entity.Group, 0, len(groups))
	for _, chunk := range helpers.Chunk(groups, seedBatchSize) {
		batch := &pgx.Batch{}
		for _, g := range chunk {
			batch.Queue(insertGroupSQL, g.Title, g.Description, g.Locality, g.Tags, g.Rules, g.ImageURL, g.CreatedBy)
		}
		br := s.pool.SendBatch(ctx, batch)
		for _, g := range chunk {
			row, err := scanGroup(br.QueryRow())
			if err != nil {
				_ = br.Close()
				return nil, fmt.Errorf("seed group %q: %w", g.Title, err)
			}
			out = append(out, row)
		}
		if err := br.Close(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

const insertEventSQL = `
	INSERT INTO events (group_id, title, description, event_date, location, address, max_attendees, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (group_id, title, event_date) DO NOTHING
`

func (s *SeedStore) InsertEvents(ctx context.Context, events []entity.EventInsert) error {
	for _, chunk := range helpers.Chunk(events, seedBatchSize) {
		batch := &pgx.Batch{}
		for _, e := range chunk {
			batch.Queue(insertEventSQL, e.GroupID, e.Title, e.Description, e.EventDate, e.Location, e.Address, e.MaxAttendees, e.CreatedBy)
		}
		if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	return nil
}

// AllGroups returns every group, for rebuilding the search index.
func (s *SeedStore) AllGroups(ctx context.Context) ([]entity.Group, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, locality, tags, rules, image_url, is_verified, member_count, created_by, created_at, updated_at
		FROM groups
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGroup(row pgx.Row) (entity.Group, error) {
	var g entity.Group
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Locality, &g.Tags, &g.Rules, &g.ImageURL,
		&g.IsVerified, &g.MemberCount, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}
