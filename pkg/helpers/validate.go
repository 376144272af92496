package helpers

import (
	"net/url"
	"regexp"
	"strings"
)

// Deliberately loose: anything shaped like x@y.z passes.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var tabOrNewline = strings.NewReplacer("\t", "", "\r", "", "\n", "")

// schemes that must carry an authority to be a usable URL
var hostRequired = map[string]bool{
	"http": true, "https": true, "ws": true, "wss": true, "ftp": true,
}

// IsValidURL reports whether s is an absolute URL. Any scheme is accepted;
// web schemes need a host. Surrounding whitespace is ignored and tabs or
// newlines are dropped, as browsers do before parsing.
func IsValidURL(s string) bool {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	s = tabOrNewline.Replace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostRequired[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}
