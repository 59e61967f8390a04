package services

import (
	"fmt"
	"strings"

	"github.com/pressline/pressline-backend/internal/repositories"
)

const maxSlugLen = 120

// Slugify lowercases the title and collapses every non-alphanumeric run into
// a single dash.
func Slugify(title string) string {
	out := make([]rune, 0, len(title))
	lastDash := false
	for _, raw := range strings.ToLower(strings.TrimSpace(title)) {
		ch := raw
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			out = append(out, ch)
			lastDash = false
			continue
		}
		if !lastDash {
			out = append(out, '-')
			lastDash = true
		}
	}
	slug := strings.Trim(string(out), "-")
	if slug == "" {
		slug = "story"
	}
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	return slug
}

// uniqueStorySlug resolves slug collisions by appending -1, -2, ... until
// the slug is free.
func uniqueStorySlug(stories repositories.StoryRepository, title string) (string, error) {
	base := Slugify(title)
	slug := base
	for i := 1; ; i++ {
		taken, err := stories.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
