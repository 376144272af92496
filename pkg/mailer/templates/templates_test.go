package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_NewEvent(t *testing.T) {
	spots := 25
	data := Data{
		Site:       Site{URL: "https://famjamjam.test", CompanyName: "FamJamJam"},
		FamilyName: "The Raos",
		Event: &EventData{
			Title:        `Picnic <script>alert("x")</script>`,
			Description:  "Bring snacks & mats",
			Location:     "Cubbon Park",
			GroupTitle:   "Koramangala Parents",
			Date:         time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC),
			MaxAttendees: &spots,
			URL:          "https://famjamjam.test/groups/g1/events/e1",
		},
	}
	subject, text, html, err := Render(NewEvent, data)
	require.NoError(t, err)

	assert.Equal(t, `New event in Koramangala Parents: Picnic <script>alert("x")</script>`, subject)
	assert.Contains(t, text, "When:  Saturday, March 9th at 10:30 AM")
	assert.Contains(t, text, "Spots: 25")
	assert.Contains(t, html, "Picnic &lt;script&gt;alert(&quot;x&quot;)&lt;&#x2F;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Bring snacks & mats")
}

func TestRender_NewEventWithoutCapacity(t *testing.T) {
	data := Data{
		Site: Site{CompanyName: "FamJamJam"},
		Event: &EventData{Title: "Story time", GroupTitle: "Readers", Date: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
	}
	_, text, _, err := Render(NewEvent, data)
	require.NoError(t, err)
	assert.NotContains(t, text, "Spots:")
	assert.Contains(t, text, "Hi there,")
}

func TestRender_Welcome(t *testing.T) {
	subject, text, html, err := Render(Welcome, Data{
		Site:       Site{URL: "https://famjamjam.test", CompanyName: "FamJamJam", SupportURL: "https://famjamjam.test/help"},
		FamilyName: "The Iyers",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to FamJamJam, The Iyers!", subject)
	assert.Contains(t, text, "https://famjamjam.test/groups")
	assert.Contains(t, html, "https://famjamjam.test/help")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", Data{})
	assert.Error(t, err)
}
