package helpers

import (
	"regexp"
	"strings"
)

const defaultTruncateLength = 100

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Truncate returns s unchanged when it fits in length runes, otherwise the first
// length runes followed by "...". length defaults to 100.
func Truncate(s string, length ...int) string {
	n := defaultTruncateLength
	if len(length) > 0 {
		n = length[0]
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n < 0 {
		n = 0
	}
	return string(r[:n]) + "..."
}

// Slugify lowercases s, drops anything that is not a word character, space or
// hyphen, and joins the remaining words with single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}

var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// SanitizeHTML escapes < > " ' and / in a single pass. Existing entities are not
// recognised, so applying it twice double-escapes.
func SanitizeHTML(html string) string {
	return htmlEscaper.Replace(html)
}
