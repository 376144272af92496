package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/internal/domain/repository"
)

type recorded struct {
	method string
	path   string
	query  map[string]string
	prefer string
	body   map[string]any
}

func newStore(t *testing.T, status int, respond string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.prefer = r.Header.Get("Prefer")
		rec.query = map[string]string{}
		for k, v := range r.URL.Query() {
			rec.query[k] = v[0]
		}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respond))
	}))
	t.Cleanup(srv.Close)
	return New(Options{URL: srv.URL, Key: "k"}), rec
}

const profileRow = `{"id":"u1","family_name":"The Raos","email":"rao@example.com","bio":null,"interests":["Gaming"],
"neighborhood":null,"city":"Bangalore","avatar_url":null,"is_verified":false,"verification_requested_at":null,
"verified_at":null,"created_at":"2024-03-05T10:00:00+00:00","updated_at":"2024-03-05T10:00:00+00:00"}`

func TestProfileRepository_GetByID(t *testing.T) {
	db, rec := newStore(t, http.StatusOK, "["+profileRow+"]")
	p, err := NewProfileRepository(db).GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "The Raos", p.FamilyName)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/rest/v1/profiles", rec.path)
	assert.Equal(t, "eq.u1", rec.query["id"])
	assert.Equal(t, "1", rec.query["limit"])
}

func TestProfileRepository_GetByID_NoRows(t *testing.T) {
	db, _ := newStore(t, http.StatusOK, "[]")
	_, err := NewProfileRepository(db).GetByID(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileRepository_CreateConflict(t *testing.T) {
	db, rec := newStore(t, http.StatusConflict, `{"code":"23505","message":"duplicate key value violates unique constraint \"profiles_pkey\""}`)
	_, err := NewProfileRepository(db).Create(context.Background(), entity.ProfileInsert{ID: "u1", FamilyName: "The Raos", Email: "rao@example.com"})
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Contains(t, rec.prefer, "return=representation")
	assert.NotContains(t, rec.body, "bio")
}

func TestProfileRepository_Update(t *testing.T) {
	db, rec := newStore(t, http.StatusOK, "["+profileRow+"]")
	bio := "Two kids, one dog"
	_, err := NewProfileRepository(db).Update(context.Background(), "u1", entity.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "eq.u1", rec.query["id"])
	assert.Equal(t, map[string]any{"bio": "Two kids, one dog"}, rec.body)
}

func TestGroupRepository_ListFilters(t *testing.T) {
	db, rec := newStore(t, http.StatusOK, `[{"id":"g1","title":"Weekend Picnics","description":"d","locality":"Koramangala",
"tags":["Outdoor"],"rules":null,"image_url":null,"is_verified":true,"member_count":1200,"created_by":null,
"created_at":"2024-03-05T10:00:00+00:00","updated_at":"2024-03-05T10:00:00+00:00"}]`)
	groups, err := NewGroupRepository(db).List(context.Background(), entity.GroupFilter{Locality: "Koramangala", Tag: "Outdoor"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 1200, groups[0].MemberCount)
	assert.Equal(t, "eq.Koramangala", rec.query["locality"])
	assert.Equal(t, `cs.{"Outdoor"}`, rec.query["tags"])
	assert.Equal(t, "created_at.desc.nullslast", rec.query["order"])
	assert.Equal(t, "50", rec.query["limit"])
}

func TestGroupRepository_ServerError(t *testing.T) {
	db, _ := newStore(t, http.StatusInternalServerError, `{"code":"XX000","message":"boom"}`)
	_, err := NewGroupRepository(db).List(context.Background(), entity.GroupFilter{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "boom")
}

func TestGroupRepository_SingleObjectNoRows(t *testing.T) {
	db, _ := newStore(t, http.StatusNotAcceptable, `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`)
	_, err := NewGroupRepository(db).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventRepository(t *testing.T) {
	db, rec := newStore(t, http.StatusCreated, `[{"id":"e1","group_id":"g1","title":"Picnic","description":"Bring snacks",
"event_date":"2024-03-09T10:00:00+00:00","location":"Cubbon Park","address":null,"max_attendees":30,"image_url":null,
"created_by":"u1","created_at":"2024-03-05T10:00:00+00:00","updated_at":"2024-03-05T10:00:00+00:00"}]`)
	max := 30
	ev, err := NewEventRepository(db).Create(context.Background(), entity.EventInsert{
		GroupID: "g1", Title: "Picnic", Description: "Bring snacks",
		EventDate: time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC), Location: "Cubbon Park", MaxAttendees: &max,
	})
	require.NoError(t, err)
	require.NotNil(t, ev.MaxAttendees)
	assert.Equal(t, 30, *ev.MaxAttendees)
	assert.Equal(t, "/rest/v1/events", rec.path)
	assert.Equal(t, "2024-03-09T10:00:00Z", rec.body["event_date"])

	_, err = NewEventRepository(db).ListByGroup(context.Background(), "g1", 0)
	require.NoError(t, err)
	assert.Equal(t, "eq.g1", rec.query["group_id"])
	assert.Equal(t, "event_date.asc.nullslast", rec.query["order"])
}

func TestRepositories_HonourCancelledContext(t *testing.T) {
	db, rec := newStore(t, http.StatusOK, "[]")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGroupRepository(db).GetByID(ctx, "g1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.method, "no request is sent")
}
