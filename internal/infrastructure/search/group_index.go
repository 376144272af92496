package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// GroupMapping is applied when the groups index is first created.
const GroupMapping = `{
  "mappings": {
    "properties": {
      "id":           {"type": "keyword"},
      "title":        {"type": "text"},
      "description":  {"type": "text"},
      "locality":     {"type": "keyword"},
      "tags":         {"type": "keyword"},
      "is_verified":  {"type": "boolean"},
      "member_count": {"type": "integer"},
      "created_at":   {"type": "date"},
      "updated_at":   {"type": "date"}
    }
  }
}`

// GroupIndex stores group documents in a single Elasticsearch index.
type GroupIndex struct {
	ES    *elasticsearch.Client
	Name  string
}

func NewGroupIndex(es *elasticsearch.Client, index string) *GroupIndex {
	return &GroupIndex{ES: es, Name: index}
}

func (x *GroupIndex) Ensure(ctx context.Context) error {
	return helpers.EnsureIndex(ctx, x.ES, x.Name, GroupMapping)
}

func (x *GroupIndex) Index(ctx context.Context, g entity.Group) error {
	b, err := json.Marshal(g)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.Name, DocumentID: g.ID, Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(ctx, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index group %s: %s", g.ID, res.Status())
	}
	return nil
}

// Search runs a multi_match over title, description, tags and locality.
func (x *GroupIndex) Search(ctx context.Context, q string, size int) ([]entity.Group, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^3", "tags^2", "description", "locality"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	res, err := x.ES.Search(
		x.ES.Search.WithContext(ctx),
		x.ES.Search.WithIndex(x.Name),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search groups: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string       `json:"_id"`
				Source entity.Group `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Group, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		g := h.Source
		if g.ID == "" {
			g.ID = h.ID
		}
		out = append(out, g)
	}
	return out, nil
}
