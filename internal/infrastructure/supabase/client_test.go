package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/famjamjam/config"
	"github.com/oksasatya/famjamjam/internal/domain/entity"
)

func TestNewServerClient_RequiresURLAndKey(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{name: "missing both", cfg: config.Config{}},
		{name: "missing key", cfg: config.Config{SupabaseURL: "https://x.supabase.co"}},
		{name: "missing url", cfg: config.Config{SupabaseServiceRoleKey: "service"}},
		{name: "blank key", cfg: config.Config{SupabaseURL: "https://x.supabase.co", SupabaseServiceRoleKey: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewServerClient(&tt.cfg)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrMissingConfig)
		})
	}
}

func TestNewServerClient_AuthOptions(t *testing.T) {
	c, err := NewServerClient(&config.Config{SupabaseURL: "https://x.supabase.co", SupabaseServiceRoleKey: "service"})
	require.NoError(t, err)
	assert.Equal(t, AuthOptions{PersistSession: false, AutoRefreshToken: false}, c.AuthOptions())
	assert.False(t, c.HasSession())
}

func TestNewBrowserClient_NeverFailsAtConstruction(t *testing.T) {
	c := NewBrowserClient(&config.Config{})
	require.NotNil(t, c)
	assert.Equal(t, AuthOptions{PersistSession: true, AutoRefreshToken: true}, c.AuthOptions())

	// the configuration problem shows up on the first query
	var rows []map[string]any
	_, err := c.From("groups").Select("*", "", false).ExecuteTo(&rows)
	assert.Error(t, err)
}

func TestClient_SendsKeyHeaders(t *testing.T) {
	var gotAPIKey, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := &config.Config{SupabaseURL: srv.URL, SupabaseAnonKey: "anon-key", SupabaseServiceRoleKey: "service-key"}

	browser := NewBrowserClient(cfg)
	var rows []map[string]any
	_, err := browser.From("groups").Select("*", "", false).ExecuteTo(&rows)
	require.NoError(t, err)
	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)
	assert.Equal(t, "/rest/v1/groups", gotPath)

	server, err := NewServerClient(cfg)
	require.NoError(t, err)
	_, err = server.From("profiles").Select("*", "", false).ExecuteTo(&rows)
	require.NoError(t, err)
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "Bearer service-key", gotAuth)
}

func TestClient_WithSession(t *testing.T) {
	var gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	base := NewBrowserClient(&config.Config{SupabaseURL: srv.URL, SupabaseAnonKey: "anon-key"})
	user := base.WithSession("user-jwt")
	assert.True(t, user.HasSession())
	assert.False(t, base.HasSession())
	assert.Same(t, base, base.WithSession(""))

	var rows []map[string]any
	_, err := user.From("events").Select("*", "", false).ExecuteTo(&rows)
	require.NoError(t, err)
	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer user-jwt", gotAuth)

	_, err = base.From("events").Select("*", "", false).ExecuteTo(&rows)
	require.NoError(t, err)
	assert.Equal(t, "Bearer anon-key", gotAuth, "the original handle keeps its own credentials")
}

func TestRepositories_UseContextSession(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := &config.Config{SupabaseURL: srv.URL, SupabaseAnonKey: "anon-key", SupabaseServiceRoleKey: "service-key"}
	browser := NewBrowserClient(cfg)
	server, err := NewServerClient(cfg)
	require.NoError(t, err)

	ctx := ContextWithSession(context.Background(), "user-jwt")
	_, err = NewGroupRepository(browser).List(ctx, entity.GroupFilter{})
	require.NoError(t, err)
	_, err = NewGroupRepository(browser).List(context.Background(), entity.GroupFilter{})
	require.NoError(t, err)
	_, err = NewGroupRepository(server).List(ctx, entity.GroupFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer user-jwt", "Bearer anon-key", "Bearer service-key"}, gotAuth)
	assert.Equal(t, context.Background(), ContextWithSession(context.Background(), ""))
}
