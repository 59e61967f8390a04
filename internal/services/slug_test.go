package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "Hello World", "hello-world"},
		{"punctuation collapses", "Go, Go... Go!", "go-go-go"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"digits survive", "Top 10 Tips", "top-10-tips"},
		{"unicode strips to dashes", "Café & Crème", "caf-cr-me"},
		{"empty falls back", "", "story"},
		{"only punctuation falls back", "!!!", "story"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}

	t.Run("long titles are truncated without a trailing dash", func(t *testing.T) {
		slug := Slugify(strings.Repeat("word ", 60))
		assert.LessOrEqual(t, len(slug), maxSlugLen)
		assert.False(t, strings.HasSuffix(slug, "-"))
	})
}
