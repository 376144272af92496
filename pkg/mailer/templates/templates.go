package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	texttpl "text/template"
	"time"

	"github.com/oksasatya/famjamjam/pkg/helpers"
)

//go:embed *.tmpl
var FS embed.FS

// Site holds the links and branding shared by every email.
type Site struct {
	URL         string
	CompanyName string
	SupportURL  string
}

// Data is the model every template renders.
type Data struct {
	Site       Site
	FamilyName string
	Email      string
	Event      *EventData
}

type EventData struct {
	Title        string
	Description  string
	Location     string
	GroupTitle   string
	Date         time.Time
	MaxAttendees *int
	URL          string
}

// Template names
const (
	NewEvent = "new_event"
	Welcome  = "welcome"
)

// HTML bodies go through text/template; user supplied text must be piped
// through "escape" so markup in titles or descriptions renders as text.
func funcs() texttpl.FuncMap {
	return texttpl.FuncMap{
		"escape":     helpers.SanitizeHTML,
		"formatDate": func(t time.Time, layout string) string { return helpers.FormatDate(t, layout) },
		"truncate":   func(n int, s string) string { return helpers.Truncate(s, n) },
		"initials":   helpers.GetInitials,
		"upper":      strings.ToUpper,
		"default":    defaultFn,
	}
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback string, value string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func renderFile(filename string, data any) (string, error) {
	tpl, err := texttpl.New(filename).Funcs(funcs()).Option("missingkey=error").ParseFS(FS, filename)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", filename, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", filename, err)
	}
	return buf.String(), nil
}

// Render loads and renders subject, text, and html templates for the given base name.
// Expects: <name>.subject.tmpl, <name>.text.tmpl, <name>.html.tmpl
func Render(name string, data Data) (subject string, text string, html string, err error) {
	subject, err = renderFile(name+".subject.tmpl", data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderFile(name+".text.tmpl", data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderFile(name+".html.tmpl", data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
