package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	repo "github.com/oksasatya/famjamjam/internal/domain/repository"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

const (
	previewLength     = 140
	defaultSearchSize = 10
	maxSearchSize     = 50
)

var ErrSearchUnavailable = errors.New("search is not configured")

// GroupService reads through the public handle and writes through the privileged one.
type GroupService struct {
	Reader  repo.GroupRepository
	Writer  repo.GroupRepository
	Index   GroupIndex
	Indexer *DebouncedIndexer
	Logger  *logrus.Logger
}

func NewGroupService(reader, writer repo.GroupRepository, index GroupIndex, indexer *DebouncedIndexer, logger *logrus.Logger) *GroupService {
	return &GroupService{Reader: reader, Writer: writer, Index: index, Indexer: indexer, Logger: logger}
}

type GroupView struct {
	entity.Group
	Slug        string `json:"slug"`
	Preview     string `json:"preview"`
	MemberLabel string `json:"member_label"`
}

func newGroupView(g entity.Group) GroupView {
	return GroupView{
		Group:       g,
		Slug:        helpers.Slugify(g.Title),
		Preview:     helpers.Truncate(g.Description, previewLength),
		MemberLabel: memberLabel(g.MemberCount),
	}
}

func memberLabel(n int) string {
	if n == 1 {
		return "1 member"
	}
	return helpers.FormatNumber(float64(n)) + " members"
}

func groupViews(groups []entity.Group) []GroupView {
	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, newGroupView(g))
	}
	return out
}

func (s *GroupService) List(ctx context.Context, f entity.GroupFilter) ([]GroupView, error) {
	groups, err := s.Reader.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return groupViews(groups), nil
}

func (s *GroupService) Get(ctx context.Context, id string) (*GroupView, error) {
	g, err := s.Reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	v := newGroupView(*g)
	return &v, nil
}

type CreateGroupInput struct {
	Title       string
	Description string
	Locality    string
	Tags        []string
	Rules       *string
	ImageURL    *string
}

// Create stores a group owned by userID and schedules it for indexing.
func (s *GroupService) Create(ctx context.Context, userID string, in CreateGroupInput) (*GroupView, error) {
	row := entity.GroupInsert{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Locality:    strings.TrimSpace(in.Locality),
		Rules:       in.Rules,
		ImageURL:    in.ImageURL,
		CreatedBy:   &userID,
	}
	if len(in.Tags) > 0 {
		row.Tags = helpers.Unique(in.Tags)
	}
	g, err := s.Writer.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	if s.Indexer != nil {
		s.Indexer.Schedule(*g)
	}
	helpers.LogInfo(s.Logger, "group created", logrus.Fields{"group_id": g.ID, "user_id": userID})
	v := newGroupView(*g)
	return &v, nil
}

// Search runs a full-text query against the group index.
func (s *GroupService) Search(ctx context.Context, q string, size int) ([]GroupView, error) {
	if s.Index == nil {
		return nil, ErrSearchUnavailable
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return []GroupView{}, nil
	}
	if size <= 0 || size > maxSearchSize {
		size = defaultSearchSize
	}
	groups, err := s.Index.Search(ctx, q, size)
	if err != nil {
		return nil, err
	}
	return groupViews(groups), nil
}
