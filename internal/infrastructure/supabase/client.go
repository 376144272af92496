package supabase

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	"github.com/oksasatya/famjamjam/config"
)

// ErrMissingConfig is returned by NewServerClient when the project URL or the
// service role key is not configured.
var ErrMissingConfig = errors.New("supabase: NEXT_PUBLIC_SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")

// AuthOptions mirrors the session handling flags of the hosted auth client.
// The API never refreshes tokens itself; the flags record which trust context a
// handle was built for.
type AuthOptions struct {
	PersistSession   bool
	AutoRefreshToken bool
}

type Options struct {
	URL     string // project URL, e.g. https://xyz.supabase.co
	Key     string // anon or service role key
	Schema  string
	Timeout time.Duration
	Auth    AuthOptions
}

// Client is a configured handle to the hosted row store. Construction does no
// network I/O; requests go out when a query built from From is executed.
type Client struct {
	opts        Options
	accessToken string
	transport   http.RoundTripper
	rest        *postgrest.Client
}

// New builds a handle from explicit options.
func New(opts Options) *Client {
	if opts.Schema == "" {
		opts.Schema = "public"
	}
	return newClient(opts, "", newTransport(opts.Timeout))
}

func newClient(opts Options, accessToken string, transport http.RoundTripper) *Client {
	bearer := opts.Key
	if accessToken != "" {
		bearer = accessToken
	}
	rest := postgrest.NewClient(restURL(opts.URL), opts.Schema, map[string]string{
		"apikey":        opts.Key,
		"Authorization": "Bearer " + bearer,
	})
	if rest.Transport != nil {
		rest.Transport.Parent = transport
	}
	return &Client{opts: opts, accessToken: accessToken, transport: transport, rest: rest}
}

func restURL(projectURL string) string {
	if projectURL == "" {
		return ""
	}
	return strings.TrimRight(projectURL, "/") + "/rest/v1"
}

func newTransport(timeout time.Duration) http.RoundTripper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

// NewBrowserClient returns the end-user handle: public anon key, session
// persistence and token refresh enabled. Missing configuration is not checked
// here and surfaces as an error from the first query.
func NewBrowserClient(cfg *config.Config) *Client {
	return New(Options{
		URL:     cfg.SupabaseURL,
		Key:     cfg.SupabaseAnonKey,
		Schema:  cfg.SupabaseSchema,
		Timeout: cfg.SupabaseTimeout,
		Auth:    AuthOptions{PersistSession: true, AutoRefreshToken: true},
	})
}

// NewServerClient returns the privileged handle built from the service role key.
// It never persists or refreshes sessions.
func NewServerClient(cfg *config.Config) (*Client, error) {
	if strings.TrimSpace(cfg.SupabaseURL) == "" || strings.TrimSpace(cfg.SupabaseServiceRoleKey) == "" {
		return nil, ErrMissingConfig
	}
	return New(Options{
		URL:     cfg.SupabaseURL,
		Key:     cfg.SupabaseServiceRoleKey,
		Schema:  cfg.SupabaseSchema,
		Timeout: cfg.SupabaseTimeout,
		Auth:    AuthOptions{PersistSession: false, AutoRefreshToken: false},
	}), nil
}

// WithSession returns a copy whose requests carry the user's access token, so
// row level security applies to that user. An empty token returns c unchanged.
func (c *Client) WithSession(accessToken string) *Client {
	if accessToken == "" {
		return c
	}
	return newClient(c.opts, accessToken, c.transport)
}

type sessionKey struct{}

// ContextWithSession attaches the caller's access token to ctx.
func ContextWithSession(ctx context.Context, accessToken string) context.Context {
	if accessToken == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, accessToken)
}

// scoped returns the handle to use for ctx. End-user handles act as the
// session carried by ctx; privileged handles are never narrowed.
func (c *Client) scoped(ctx context.Context) *Client {
	if !c.opts.Auth.PersistSession || c.accessToken != "" {
		return c
	}
	token, _ := ctx.Value(sessionKey{}).(string)
	return c.WithSession(token)
}

// From starts a query against table.
func (c *Client) From(table string) *postgrest.QueryBuilder {
	return c.rest.From(table)
}

func (c *Client) AuthOptions() AuthOptions { return c.opts.Auth }

// HasSession reports whether the handle acts on behalf of a signed-in user.
func (c *Client) HasSession() bool { return c.accessToken != "" }
