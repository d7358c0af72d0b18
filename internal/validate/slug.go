package validate

import (
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugStrip    = regexp.MustCompile(`[^\w-]+`)
	slugCollapse = regexp.MustCompile(`--+`)
)

// Slugify derives a URL slug from free text: lowercase, spaces to hyphens,
// non-word characters stripped, runs of hyphens collapsed.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
