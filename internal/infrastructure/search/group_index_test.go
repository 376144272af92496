package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
)

type esCall struct {
	method string
	path   string
	body   string
}

func newES(t *testing.T, status int, respond string) (*GroupIndex, *[]esCall) {
	t.Helper()
	var calls []esCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, esCall{method: r.Method, path: r.URL.Path, body: string(b)})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respond)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewGroupIndex(es, "groups"), &calls
}

func TestGroupIndex_Index(t *testing.T) {
	idx, calls := newES(t, http.StatusCreated, `{"result":"created"}`)

	err := idx.Index(context.Background(), entity.Group{ID: "g1", Title: "Park Dads", Tags: []string{"Outdoor"}})
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	c := (*calls)[0]
	assert.Equal(t, http.MethodPut, c.method)
	assert.Equal(t, "/groups/_doc/g1", c.path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(c.body), &doc))
	assert.Equal(t, "Park Dads", doc["title"])
}

func TestGroupIndex_IndexErrorStatus(t *testing.T) {
	idx, _ := newES(t, http.StatusBadRequest, `{"error":"mapper_parsing_exception"}`)
	err := idx.Index(context.Background(), entity.Group{ID: "g1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "g1")
}

func TestGroupIndex_Search(t *testing.T) {
	idx, calls := newES(t, http.StatusOK, `{"hits":{"hits":[
		{"_id":"g1","_source":{"id":"g1","title":"Park Dads","locality":"Koramangala","member_count":12}},
		{"_id":"g2","_source":{"title":"Toddler Art"}}
	]}}`)

	groups, err := idx.Search(context.Background(), "park", 5)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Park Dads", groups[0].Title)
	assert.Equal(t, 12, groups[0].MemberCount)
	assert.Equal(t, "g2", groups[1].ID)

	c := (*calls)[0]
	assert.Equal(t, "/groups/_search", c.path)
	assert.True(t, strings.Contains(c.body, `"multi_match"`))
	assert.True(t, strings.Contains(c.body, `"size":5`))
}

func TestGroupIndex_SearchErrorStatus(t *testing.T) {
	idx, _ := newES(t, http.StatusNotFound, `{"error":"index_not_found_exception"}`)
	_, err := idx.Search(context.Background(), "park", 5)
	assert.Error(t, err)
}

func TestGroupIndex_UsesConfiguredName(t *testing.T) {
	idx, calls := newES(t, http.StatusOK, `{"hits":{"hits":[]}}`)
	idx.Name = "groups-v2"
	ctx := context.Background()

	require.NoError(t, idx.Ensure(ctx))
	require.NoError(t, idx.Index(ctx, entity.Group{ID: "g1"}))
	_, err := idx.Search(ctx, "park", 5)
	require.NoError(t, err)

	require.Len(t, *calls, 3)
	assert.Equal(t, http.MethodHead, (*calls)[0].method)
	assert.Equal(t, "/groups-v2", (*calls)[0].path)
	assert.Equal(t, "/groups-v2/_doc/g1", (*calls)[1].path)
	assert.Equal(t, "/groups-v2/_search", (*calls)[2].path)
}
