package application

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	repo "github.com/oksasatya/famjamjam/internal/domain/repository"
)

type fakeProfiles struct {
	rows      map[string]entity.Profile
	createErr error
	inserted  []entity.ProfileInsert
	updates   []entity.ProfileUpdate
}

func newFakeProfiles(rows ...entity.Profile) *fakeProfiles {
	f := &fakeProfiles{rows: map[string]entity.Profile{}}
	for _, p := range rows {
		f.rows[p.ID] = p
	}
	return f
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Create(_ context.Context, in entity.ProfileInsert) (*entity.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.inserted = append(f.inserted, in)
	p := entity.Profile{ID: in.ID, FamilyName: in.FamilyName, Email: in.Email, Interests: in.Interests}
	f.rows[in.ID] = p
	return &p, nil
}

func (f *fakeProfiles) Update(_ context.Context, id string, in entity.ProfileUpdate) (*entity.Profile, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	f.updates = append(f.updates, in)
	if in.FamilyName != nil {
		p.FamilyName = *in.FamilyName
	}
	if in.Interests != nil {
		p.Interests = in.Interests
	}
	if in.AvatarURL != nil {
		p.AvatarURL = in.AvatarURL
	}
	f.rows[id] = p
	return &p, nil
}

type fakeGroups struct {
	rows     map[string]entity.Group
	listErr  error
	filters  []entity.GroupFilter
	inserted []entity.GroupInsert
}

func newFakeGroups(rows ...entity.Group) *fakeGroups {
	f := &fakeGroups{rows: map[string]entity.Group{}}
	for _, g := range rows {
		f.rows[g.ID] = g
	}
	return f
}

func (f *fakeGroups) List(_ context.Context, filter entity.GroupFilter) ([]entity.Group, error) {
	f.filters = append(f.filters, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Group, 0, len(f.rows))
	for _, g := range f.rows {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGroups) GetByID(_ context.Context, id string) (*entity.Group, error) {
	g, ok := f.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &g, nil
}

func (f *fakeGroups) Create(_ context.Context, in entity.GroupInsert) (*entity.Group, error) {
	f.inserted = append(f.inserted, in)
	g := entity.Group{ID: "g-new", Title: in.Title, Description: in.Description, Locality: in.Locality, Tags: in.Tags, CreatedBy: in.CreatedBy}
	f.rows[g.ID] = g
	return &g, nil
}

type fakeEvents struct {
	rows     []entity.Event
	inserted []entity.EventInsert
}

func (f *fakeEvents) ListByGroup(_ context.Context, groupID string, _ int) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range f.rows {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvents) Create(_ context.Context, in entity.EventInsert) (*entity.Event, error) {
	f.inserted = append(f.inserted, in)
	e := entity.Event{
		ID:           "e-new",
		GroupID:      in.GroupID,
		Title:        in.Title,
		Description:  in.Description,
		EventDate:    in.EventDate,
		Location:     in.Location,
		MaxAttendees: in.MaxAttendees,
		CreatedBy:    in.CreatedBy,
	}
	f.rows = append(f.rows, e)
	return &e, nil
}

type fakePublisher struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

type fakeUploader struct {
	path        string
	contentType string
	body        []byte
	err         error
}

func (u *fakeUploader) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.path, u.contentType = objectPath, contentType
	u.body, _ = io.ReadAll(r)
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}

type fakeIndex struct {
	mu      sync.Mutex
	indexed chan entity.Group
	results []entity.Group
	err     error
	queries []string
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{indexed: make(chan entity.Group, 8)}
}

func (x *fakeIndex) Index(_ context.Context, g entity.Group) error {
	x.indexed <- g
	return x.err
}

func (x *fakeIndex) Search(_ context.Context, q string, _ int) ([]entity.Group, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.queries = append(x.queries, q)
	return x.results, x.err
}

var errBoom = errors.New("boom")
