package helpers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		length []int
		want   string
	}{
		{name: "short string unchanged", in: "hello", length: []int{10}, want: "hello"},
		{name: "exact length unchanged", in: "hello", length: []int{5}, want: "hello"},
		{name: "cut with ellipsis", in: "hello world", length: []int{5}, want: "hello..."},
		{name: "zero length", in: "abc", length: []int{0}, want: "..."},
		{name: "multibyte counts runes", in: "नमस्ते दुनिया", length: []int{3}, want: "नमस..."},
		{name: "default length keeps 100", in: strings.Repeat("a", 100), want: strings.Repeat("a", 100)},
		{name: "default length cuts 101", in: strings.Repeat("a", 101), want: strings.Repeat("a", 100) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.length...))
		})
	}
}

func TestTruncate_LengthBound(t *testing.T) {
	inputs := []string{"", "a", "family meetup", strings.Repeat("xyz ", 40)}
	for _, s := range inputs {
		for n := 0; n < 20; n++ {
			got := Truncate(s, n)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), n+3)
			if utf8.RuneCountInString(s) <= n {
				assert.Equal(t, s, got)
			}
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Koramangala Parents' Club!  ", "koramangala-parents-club"},
		{"Arts & Crafts", "arts-crafts"},
		{"snake_case__name", "snake-case-name"},
		{"---already-slugged---", "already-slugged"},
		{"Café Meetup", "caf-meetup"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_IdempotentAndClean(t *testing.T) {
	inputs := []string{
		"Weekend Trips -- to Nandi Hills",
		"STEM & Science_Club",
		"__lead__and__trail__",
		"Ünïcödé   spaces\ttabs",
		"a--b  c__d",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", in)
		assert.False(t, strings.HasPrefix(once, "-"))
		assert.False(t, strings.HasSuffix(once, "-"))
		assert.NotContains(t, once, "--")
		for _, r := range once {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "unexpected rune %q in %q", r, once)
		}
	}
}

func TestSanitizeHTML(t *testing.T) {
	assert.Equal(t,
		"&lt;script&gt;alert(&quot;x&quot;)&lt;&#x2F;script&gt;",
		SanitizeHTML(`<script>alert("x")</script>`))
	assert.Equal(t, "it&#x27;s", SanitizeHTML("it's"))
	assert.Equal(t, "plain text & more", SanitizeHTML("plain text & more"))
	assert.Equal(t, "&lt;b&gt;", SanitizeHTML("<b>"))
	assert.Equal(t, "&lt;b&gt;", SanitizeHTML(SanitizeHTML("<b>")), "entities carry none of the escaped characters")
	assert.Equal(t, "&lt;&#x2F;&gt;", SanitizeHTML("</>"))
}
