package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "NEXT_PUBLIC_SUPABASE_URL", "SUPABASE_SCHEMA", "STORAGE_TTL", "SEARCH_INDEX_DELAY"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "famjamjam", cfg.AppName)
	assert.Equal(t, "public", cfg.SupabaseSchema)
	assert.Equal(t, "", cfg.SupabaseRESTURL())
	assert.Equal(t, time.Duration(0), cfg.StorageTTL)
	assert.Equal(t, 2*time.Second, cfg.SearchIndexDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORAGE_TTL", "720h")

	cfg := Load()
	assert.Equal(t, "https://abc.supabase.co/rest/v1", cfg.SupabaseRESTURL())
	assert.Equal(t, "anon", cfg.SupabaseAnonKey)
	assert.Equal(t, "service", cfg.SupabaseServiceRoleKey)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 720*time.Hour, cfg.StorageTTL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "maybe")
	t.Setenv("REDIS_DB", "two")
	t.Setenv("SEARCH_INDEX_DELAY", "soon")

	cfg := Load()
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 2*time.Second, cfg.SearchIndexDelay)
}

func TestLists(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: " http://a.test, ,http://b.test ",
		ElasticsearchAddrs: "http://es1:9200,http://es2:9200",
	}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.ESAddrs())
	assert.Empty(t, (&Config{}).CORSOrigins())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.PostgresDSN())
}
